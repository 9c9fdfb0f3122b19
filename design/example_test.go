package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/design"
	"github.com/cwbudde/algo-eq/eq"
)

func ExampleFromConfig() {
	// An unrecognized family yields the unity section instead of an error.
	c := design.FromConfig(eq.FilterConfig{Type: eq.FilterType(99), Frequency: 1000}, eq.DefaultSampleRate)

	fmt.Printf("%+v\n", c)
	// Output: {B0:1 B1:0 B2:0 A1:0 A2:0}
}

func ExampleChain() {
	filters := []eq.FilterConfig{
		{Type: eq.TypeHighPass, Frequency: 100, Passes: 2},
		{Type: eq.TypeLowPass, Frequency: 15000, Passes: 0}, // bypassed
	}

	chain := design.Chain(filters, eq.DefaultSampleRate)

	fmt.Println(chain.NumSections())
	// Output: 2
}
