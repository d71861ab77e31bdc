// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/colorsight/colorsight"
)

func nameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <color>...",
		Short: "Name one or more color values",
		Long: `Name classifies color literals given as #rrggbb hex or comma separated
channels ("0.1,0.6,0.15" or "26,153,38"). Each value is classified
independently; no temporal smoothing applies.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := pipelineOptions()
			if err != nil {
				return err
			}
			out := termenv.NewOutput(os.Stdout)
			for _, arg := range args {
				r, g, b, err := parseColor(arg)
				if err != nil {
					return err
				}
				// Fresh state per value: the literals are unrelated
				// observations, not a stream.
				name, conf := colorsight.New(opts).Classify(r, g, b)
				printResult(out, r, g, b, name, conf)
			}
			return nil
		},
	}
}
