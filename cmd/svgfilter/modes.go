// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/svgfilter/filters"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the feBlend mode keywords and their compositing operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, m := range filters.Modes() {
				if _, err := fmt.Fprintf(w, "%-12s %s\n", m, m.Operator()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
