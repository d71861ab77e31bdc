// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorsight names colors from the terminal: single color
// values, regions of image files, or a stream of samples on stdin.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/colorsight/colorsight"
	"github.com/colorsight/colorsight/naming"
)

var (
	flagTable    string
	flagLegacy   bool
	flagHistory  int
	flagComputed bool
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:   "colorsight",
		Short: "Name colors the way a person would",
		Long: `colorsight maps RGB samples to human-meaningful color names such as
"Forest Green" or "Dusty Rose", with lighting compensation and, for
streams, temporal smoothing.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().StringVar(&flagTable, "table", "", "TOML classification table to use instead of the built-in vocabulary")
	root.PersistentFlags().BoolVar(&flagLegacy, "legacy", false, "use the legacy normalization path (auto white balance + gamma)")
	root.PersistentFlags().IntVar(&flagHistory, "history", 0, "stabilizer window size (3-5, 0 = default)")
	root.PersistentFlags().BoolVar(&flagComputed, "computed-confidence", false, "report margin-based confidence instead of the constant")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(nameCmd(), imageCmd(), streamCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// pipelineOptions builds the shared pipeline configuration from the
// persistent flags.
func pipelineOptions() (colorsight.Options, error) {
	opts := colorsight.Options{
		Legacy:             flagLegacy,
		HistorySize:        flagHistory,
		ComputedConfidence: flagComputed,
	}
	if flagTable != "" {
		table, err := naming.LoadFile(flagTable)
		if err != nil {
			return opts, err
		}
		slog.Debug("loaded classification table", "path", flagTable, "names", len(table.Names()))
		opts.Table = table
	}
	return opts, nil
}

// parseColor accepts "#rrggbb", "rrggbb", or "r,g,b" with channels
// either in 0-1 or 0-255.
func parseColor(arg string) (r, g, b float32, err error) {
	if strings.Contains(arg, ",") {
		parts := strings.Split(arg, ",")
		if len(parts) != 3 {
			return 0, 0, 0, fmt.Errorf("expected three channels in %q", arg)
		}
		var ch [3]float32
		byteRange := false
		for i, p := range parts {
			v, perr := strconv.ParseFloat(strings.TrimSpace(p), 32)
			if perr != nil {
				return 0, 0, 0, fmt.Errorf("parsing channel %q: %w", p, perr)
			}
			if v > 1 {
				byteRange = true
			}
			ch[i] = float32(v)
		}
		if byteRange {
			for i := range ch {
				ch[i] /= 255
			}
		}
		return ch[0], ch[1], ch[2], nil
	}

	hex := strings.TrimPrefix(arg, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("expected #rrggbb, got %q", arg)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parsing hex color %q: %w", arg, err)
	}
	return float32(v>>16&0xff) / 255, float32(v>>8&0xff) / 255, float32(v&0xff) / 255, nil
}

// printResult writes one classified sample with a terminal swatch.
func printResult(out *termenv.Output, r, g, b float32, name naming.Name, conf float32) {
	hex := fmt.Sprintf("#%02x%02x%02x", byte(r*255+0.5), byte(g*255+0.5), byte(b*255+0.5))
	swatch := out.String("  ").Background(out.Color(hex))
	fmt.Fprintf(out, "%s %s  %s (%.2f)\n", swatch, hex, name, conf)
}
