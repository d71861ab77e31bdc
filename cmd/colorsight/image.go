// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/colorsight/colorsight"
	"github.com/colorsight/colorsight/sample"
)

func imageCmd() *cobra.Command {
	var (
		rect   []int
		point  []int
		radius int
		blur   float64
	)
	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Name the color of an image or a region of it",
		Long: `Image averages a region of a photo (or a small neighborhood around a
point) into one observation, optionally after a Gaussian blur, and
classifies it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening image: %w", err)
			}
			defer f.Close()
			img, format, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("decoding image: %w", err)
			}
			slog.Debug("decoded image", "format", format, "bounds", img.Bounds())

			var r, g, b float32
			switch {
			case len(point) == 2:
				r, g, b, err = sample.Point(img, point[0], point[1], radius)
			case len(rect) == 4:
				region := image.Rect(rect[0], rect[1], rect[0]+rect[2], rect[1]+rect[3])
				r, g, b, err = sample.Region(img, region, blur)
			default:
				r, g, b, err = sample.Region(img, img.Bounds(), blur)
			}
			if err != nil {
				return err
			}

			opts, err := pipelineOptions()
			if err != nil {
				return err
			}
			name, conf := colorsight.New(opts).Classify(r, g, b)
			printResult(termenv.NewOutput(os.Stdout), r, g, b, name, conf)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&rect, "rect", nil, "region to sample as x,y,w,h (default: whole image)")
	cmd.Flags().IntSliceVar(&point, "point", nil, "point to sample as x,y")
	cmd.Flags().IntVar(&radius, "radius", 4, "neighborhood radius around --point, in pixels")
	cmd.Flags().Float64Var(&blur, "blur", 0, "Gaussian blur radius applied before averaging")
	return cmd
}
