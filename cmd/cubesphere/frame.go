// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/cubesphere/frame"
	"cogentcore.org/cubesphere/gpu"
	"cogentcore.org/cubesphere/math32"
	"cogentcore.org/cubesphere/uniform"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// openSettings returns the settings in the given file,
// or the defaults if there is no file.
func openSettings(filename string) (frame.Settings, error) {
	if filename == "" {
		var s frame.Settings
		s.Defaults()
		return s, nil
	}
	fn, err := expandPath(filename)
	if err != nil {
		return frame.Settings{}, err
	}
	return frame.Open(fn)
}

func newLayoutCmd() *cobra.Command {
	var rules string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the layout of the per-frame uniform buffer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r uniform.Rules
			switch rules {
			case "wgsl":
				r = uniform.WGSL()
			case "packed":
				r = uniform.Packed()
			default:
				return fmt.Errorf("unknown rules %q: must be wgsl or packed", rules)
			}
			ly, err := uniform.NewLayout(r,
				uniform.NumberEntry(frame.TimeField, 0),
				uniform.Matrix4Entry(frame.MVPField, math32.Identity4()),
			)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ly)
			return err
		},
	}
	cmd.Flags().StringVar(&rules, "rules", "wgsl", "alignment rules: wgsl or packed")
	return cmd
}

// frameConfig has the options of the frame command.
// MaxFPS is the largest frame rate the frame command accepts.
const MaxFPS = 1000

type frameConfig struct {
	Settings string
	Watch    bool
	FPS      int
	Frames   int
}

func newFrameCmd() *cobra.Command {
	fc := &frameConfig{}
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Run the frame loop and print the packed uniforms of each frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return fc.run(ctx, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&fc.Settings, "config", "c", "", "settings file (.toml or .yaml)")
	f.BoolVar(&fc.Watch, "watch", false, "reload the settings file when it changes")
	f.IntVar(&fc.FPS, "fps", 60, "frames per second")
	f.IntVar(&fc.Frames, "frames", 1, "number of frames to run; 0 runs until interrupted")
	return cmd
}

func (fc *frameConfig) run(ctx context.Context, out io.Writer) error {
	if fc.FPS <= 0 || fc.FPS > MaxFPS {
		return fmt.Errorf("fps must be in [1, %d], not %d", MaxFPS, fc.FPS)
	}
	if fc.Watch && fc.Settings == "" {
		return fmt.Errorf("--watch needs a settings file")
	}
	s, err := openSettings(fc.Settings)
	if err != nil {
		return err
	}
	watchFile, err := expandPath(fc.Settings)
	if err != nil {
		return err
	}

	d := frame.NewDriver(s, func(n int, buf *uniform.Buffer) error {
		tm, err := buf.Float32(frame.TimeField)
		if err != nil {
			return err
		}
		mvp, err := buf.Matrix4(frame.MVPField)
		if err != nil {
			return err
		}
		ub := gpu.UniformBuffer("uniforms", buf)
		slog.Debug("submit", "frame", n, "bytes", len(ub.Contents))
		_, err = fmt.Fprintf(out, "frame %d time %g\n%v\n", n, tm, mvp)
		return err
	})
	for _, le := range gpu.LayoutEntries(d.Uniforms) {
		slog.Debug("bind group layout", "binding", le.Binding, "visibility", le.Visibility)
	}
	d.Interval = time.Second / time.Duration(fc.FPS)
	d.Frames = fc.Frames

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return d.Run(ctx)
	})
	if fc.Watch {
		w := frame.NewWatcher(watchFile, d.SetSettings)
		g.Go(func() error {
			return w.Run(ctx)
		})
	}
	return g.Wait()
}
