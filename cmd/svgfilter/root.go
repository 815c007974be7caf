// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/svgfilter"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	verbose   bool
	telemetry bool

	shutdown shutdownFunc
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "svgfilter",
		Short: "Apply SVG filter effects to raster images",
		Long: `svgfilter runs a chain of SVG filter primitives (feBlend, feColorMatrix,
feFlood, feGaussianBlur, feOffset) over a source image and writes the result.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				svgfilter.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			if opts.telemetry {
				shutdown, err := setupTelemetry(cmd.Context(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				opts.shutdown = shutdown
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log primitive execution to stderr")
	cmd.PersistentFlags().BoolVar(&opts.telemetry, "telemetry", false, "export traces and metrics to stderr")

	for _, sub := range []*cobra.Command{newRenderCmd(), newModesCmd()} {
		sub.RunE = opts.flushAfter(sub.RunE)
		cmd.AddCommand(sub)
	}
	return cmd
}

// flushAfter wraps run so telemetry is flushed on every exit path, including
// failures, where cobra skips post-run hooks.
func (o *rootOptions) flushAfter(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		return errors.Join(err, o.flush(cmd.Context()))
	}
}

func (o *rootOptions) flush(ctx context.Context) error {
	if o.shutdown == nil {
		return nil
	}
	shutdown := o.shutdown
	o.shutdown = nil
	return shutdown(ctx)
}
