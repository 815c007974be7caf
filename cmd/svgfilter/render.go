// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/svgfilter"
	"github.com/gogpu/svgfilter/filters"
	"github.com/gogpu/svgfilter/internal/imageio"
	"github.com/gogpu/svgfilter/surface"
)

type renderOptions struct {
	chain      string
	source     string
	background string
	fill       string
	stroke     string
	output     string
	scale      float64
	strict     bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Apply a filter chain to a source image",
		Long: `Render applies the filter chain described in a YAML document to the source
image and writes the filter output, composited onto a transparent canvas, to
the output file. The output format follows the file extension: .png, .jpg,
.jpeg, .bmp, .tif or .tiff.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), opts, cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.chain, "filter", "f", "", "YAML chain document")
	f.StringVarP(&opts.source, "source", "s", "", "SourceGraphic image")
	f.StringVarP(&opts.background, "background", "b", "", "BackgroundImage image")
	f.StringVar(&opts.fill, "fill", "", "FillPaint image")
	f.StringVar(&opts.stroke, "stroke", "", "StrokePaint image")
	f.StringVarP(&opts.output, "output", "o", "", "output image")
	f.Float64Var(&opts.scale, "scale", 1, "device pixels per user unit")
	f.BoolVar(&opts.strict, "strict", false, "fail when a primitive is excluded by a parse error")
	_ = cmd.MarkFlagRequired("filter")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runRender(ctx context.Context, opts *renderOptions, stderr io.Writer) error {
	if opts.scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %v", opts.scale)
	}
	if _, err := imageio.FormatFromPath(opts.output); err != nil {
		return err
	}
	doc, err := loadChain(opts.chain)
	if err != nil {
		return err
	}
	f := doc.filter()
	if errs := f.ParseErrors(); len(errs) > 0 {
		if opts.strict {
			return fmt.Errorf("filter has parse errors: %w", errors.Join(errs...))
		}
		for _, e := range errs {
			fmt.Fprintf(stderr, "warning: %v\n", e)
		}
	}

	src, err := loadSurface(opts.source)
	if err != nil {
		return err
	}
	in := filters.DrawInput{
		SourceGraphic: src,
		Transform:     svgfilter.Scale(opts.scale, opts.scale),
		BoundingBox:   toRect(doc.Filter.BoundingBox),
		Viewport:      toRect(doc.Filter.Viewport),
	}
	for _, opt := range []struct {
		dst  **surface.ImageSurface
		path string
	}{
		{&in.BackgroundImage, opts.background},
		{&in.FillPaint, opts.fill},
		{&in.StrokePaint, opts.stroke},
	} {
		if opt.path == "" {
			continue
		}
		s, err := loadSurface(opt.path)
		if err != nil {
			return err
		}
		if s.Bounds() != src.Bounds() {
			return fmt.Errorf("%s: size %v does not match the source %v", opt.path, s.Bounds().Size(), src.Bounds().Size())
		}
		*opt.dst = s
	}

	out, err := f.Apply(ctx, in)
	if err != nil {
		return err
	}

	canvas, err := surface.NewImageSurface(src.Width(), src.Height())
	if err != nil {
		return err
	}
	if err := filters.Composite(canvas, out); err != nil {
		return err
	}
	return imageio.Save(opts.output, canvas.Snapshot())
}

func loadSurface(path string) (*surface.ImageSurface, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return surface.NewImageSurfaceFromImage(img)
}
