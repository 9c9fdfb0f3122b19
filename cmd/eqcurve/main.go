// Command eqcurve prints the combined frequency response of an equalizer
// filter chain as a table.
//
// Usage:
//
//	eqcurve [flags] -filter <spec> [-filter <spec> ...]
//
// A filter spec is the family name followed by comma-separated key=value
// parameters: freq, q, width, gain, passes. Unset parameters default to the
// values the monitoring app's settings layer would supply.
//
// Examples:
//
//	eqcurve -filter "HighPass,freq=100,passes=2"
//	eqcurve -filter "HighPass,freq=250" -filter "LowShelf,freq=500,gain=-6,q=0.707"
//	eqcurve -points 16 -min 50 -max 12000 -filter "BandReject,freq=1000,width=50"
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/response"
)

// filterList collects repeated -filter flags.
type filterList struct {
	filters []eq.FilterConfig
}

func (fl *filterList) String() string {
	names := make([]string, len(fl.filters))
	for i, f := range fl.filters {
		names[i] = f.Type.String()
	}

	return strings.Join(names, ",")
}

func (fl *filterList) Set(spec string) error {
	cfg, err := parseFilterSpec(spec)
	if err != nil {
		return err
	}

	fl.filters = append(fl.filters, cfg)

	return nil
}

// parseFilterSpec parses "Type,key=value,..." into a FilterConfig.
func parseFilterSpec(spec string) (eq.FilterConfig, error) {
	fields := strings.Split(spec, ",")

	typ, ok := eq.ParseFilterType(strings.TrimSpace(fields[0]))
	if !ok {
		return eq.FilterConfig{}, fmt.Errorf("unknown filter type %q", strings.TrimSpace(fields[0]))
	}

	cfg := eq.FilterConfig{Type: typ, Passes: 1}

	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		key, value, found := strings.Cut(field, "=")
		if !found {
			return eq.FilterConfig{}, fmt.Errorf("malformed parameter %q (want key=value)", field)
		}

		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if key == "passes" {
			passes, err := strconv.Atoi(value)
			if err != nil {
				return eq.FilterConfig{}, fmt.Errorf("invalid passes %q: %w", value, err)
			}

			cfg.Passes = passes

			continue
		}

		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return eq.FilterConfig{}, fmt.Errorf("invalid value for %s: %q: %w", key, value, err)
		}

		switch key {
		case "freq", "frequency":
			cfg.Frequency = num
		case "q":
			cfg.Q = num
		case "width":
			cfg.Width = num
		case "gain":
			cfg.Gain = num
		default:
			return eq.FilterConfig{}, fmt.Errorf("unknown parameter %q", key)
		}
	}

	return cfg, nil
}

func main() {
	var filters filterList

	rate := flag.Float64("rate", eq.DefaultSampleRate, "sample rate in Hz")
	minFreq := flag.Float64("min", 20, "lowest curve frequency in Hz")
	maxFreq := flag.Float64("max", 20000, "highest curve frequency in Hz")
	points := flag.Int("points", 32, "number of log-spaced curve points")
	flag.Var(&filters, "filter", "filter spec \"Type,key=value,...\" (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqcurve [flags] -filter <spec> [-filter <spec> ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the combined frequency response of an equalizer chain.\n")
		fmt.Fprintf(os.Stderr, "Filter spec: family name plus key=value parameters\n")
		fmt.Fprintf(os.Stderr, "(freq, q, width, gain, passes), comma separated.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqcurve -filter \"HighPass,freq=100,passes=2\"\n")
		fmt.Fprintf(os.Stderr, "  eqcurve -filter \"BandReject,freq=1000,width=50\"\n")
	}
	flag.Parse()

	if *points <= 0 {
		fmt.Fprintf(os.Stderr, "error: -points must be positive\n")
		os.Exit(1)
	}

	if *minFreq <= 0 || *maxFreq <= *minFreq {
		fmt.Fprintf(os.Stderr, "error: need 0 < -min < -max\n")
		os.Exit(1)
	}

	curve := response.Curve(filters.filters, *minFreq, *maxFreq, *points, *rate)
	printCurve(curve)
}

func printCurve(curve []response.Point) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tGain [dB]\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, p := range curve {
		if _, err := fmt.Fprintf(tw, "%.1f\t%+.2f\n", p.Frequency, p.Gain); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
