// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command svgfilter applies an SVG filter chain, described in YAML, to
// raster images.
//
//	svgfilter render -f chain.yaml -s source.png -o out.png
//	svgfilter modes
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
