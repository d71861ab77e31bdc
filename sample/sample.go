// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample turns image pixels into the RGB observations the
// classification pipeline consumes. A sample is a spatial average over
// a region or a small neighborhood around a point, optionally smoothed
// first, so that a single noisy pixel never drives the displayed name.
package sample

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/draw"
)

// maxSide is the region edge length above which the region is scaled
// down before averaging, to bound per-sample cost on large photos.
const maxSide = 64

// scaledSide is the edge length regions are reduced to.
const scaledSide = 32

// Average returns the mean sRGB channel values, each in the 0-1 range,
// over the given region of the image. The region is clipped to the
// image bounds; an empty intersection is an error.
func Average(img image.Image, region image.Rectangle) (r, g, b float32, err error) {
	region = region.Intersect(img.Bounds())
	if region.Empty() {
		return 0, 0, 0, fmt.Errorf("sample: region outside image bounds")
	}
	if region.Dx() > maxSide || region.Dy() > maxSide {
		img, region = shrink(img, region)
	}

	var rs, gs, bs float64
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			rs += float64(pr)
			gs += float64(pg)
			bs += float64(pb)
		}
	}
	n := float64(region.Dx() * region.Dy())
	const scale = 65535.0
	return float32(rs / n / scale), float32(gs / n / scale), float32(bs / n / scale), nil
}

// Region returns one pipeline sample for the given region, applying a
// Gaussian blur of the given radius first when radius > 0. Blurring
// before averaging suppresses specular highlights and sensor speckle.
func Region(img image.Image, region image.Rectangle, radius float64) (r, g, b float32, err error) {
	region = region.Intersect(img.Bounds())
	if region.Empty() {
		return 0, 0, 0, fmt.Errorf("sample: region outside image bounds")
	}
	if radius > 0 {
		sub := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
		draw.Draw(sub, sub.Bounds(), img, region.Min, draw.Src)
		return Average(blur.Gaussian(sub, radius), sub.Bounds())
	}
	return Average(img, region)
}

// Point returns one pipeline sample averaged over a square neighborhood
// of the given radius centered on (x, y), clipped to the image. This is
// the live-view sampling mode: a single detection event reads a small
// patch around the reticle, not one pixel.
func Point(img image.Image, x, y, radius int) (r, g, b float32, err error) {
	if radius < 0 {
		radius = 0
	}
	region := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1)
	return Average(img, region)
}

// shrink scales the region down with bilinear filtering so averaging
// touches a bounded number of pixels.
func shrink(img image.Image, region image.Rectangle) (image.Image, image.Rectangle) {
	dst := image.NewRGBA(image.Rect(0, 0, scaledSide, scaledSide))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, region, draw.Src, nil)
	return dst, dst.Bounds()
}
