// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
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

func streamCmd() *cobra.Command {
	var every bool
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Classify a stream of samples from stdin",
		Long: `Stream reads one sample per line from stdin, three whitespace separated
channel values in the 0-1 range, and runs them through a stateful
pipeline with temporal smoothing, as a live camera feed would. By
default only changes of the stabilized name are printed. A blank line
restarts the detection session, clearing the white balance reference
and the classification history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := pipelineOptions()
			if err != nil {
				return err
			}
			state := colorsight.New(opts)
			out := termenv.NewOutput(os.Stdout)

			var last naming.Name
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					state.Reset()
					last = ""
					slog.Debug("session reset")
					continue
				}
				r, g, b, perr := parseSampleLine(line)
				if perr != nil {
					slog.Warn("skipping sample", "err", perr)
					continue
				}
				name, conf := state.Classify(r, g, b)
				if every || name != last {
					printResult(out, r, g, b, name, conf)
					last = name
				}
			}
			return sc.Err()
		},
	}
	cmd.Flags().BoolVar(&every, "every", false, "print every sample, not only name changes")
	return cmd
}

func parseSampleLine(line string) (r, g, b float32, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 channels, got %d in %q", len(fields), line)
	}
	var ch [3]float32
	for i, f := range fields {
		v, perr := strconv.ParseFloat(f, 32)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("parsing channel %q: %w", f, perr)
		}
		ch[i] = float32(v)
	}
	return ch[0], ch[1], ch[2], nil
}
