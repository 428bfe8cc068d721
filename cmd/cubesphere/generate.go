// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/cubesphere/base/errors"
	"cogentcore.org/cubesphere/heightmap"
	"cogentcore.org/cubesphere/math32"
	"cogentcore.org/cubesphere/shape"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// generateConfig has the options of the generate command.
type generateConfig struct {
	Sphere      shape.CubeSphere
	Format      string
	Output      string
	Heightmap   string
	HeightScale float32
	Blur        float64
}

func newGenerateCmd() *cobra.Command {
	gc := &generateConfig{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate cube-sphere meshes and write them as OBJ or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gc.run(cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.IntVarP(&gc.Sphere.Subdivisions, "subdivisions", "s", 1, "number of patches along each edge of a cube face")
	f.IntVarP(&gc.Sphere.Resolution, "resolution", "r", 70, "number of vertices along each edge of a patch")
	f.StringVarP(&gc.Format, "format", "f", "obj", "output format: obj or yaml")
	f.StringVarP(&gc.Output, "output", "o", "-", "output file, - for standard output")
	f.StringVar(&gc.Heightmap, "heightmap", "", "elevation image used to displace the surface")
	f.Float32Var(&gc.HeightScale, "height-scale", 0.1, "displacement at the highest elevation, relative to the radius")
	f.Float64Var(&gc.Blur, "blur", 0, "gaussian blur radius applied to the elevation image, in pixels")
	return cmd
}

func (gc *generateConfig) run(stdout io.Writer) error {
	if err := gc.Sphere.Validate(); err != nil {
		return err
	}
	var write func(io.Writer, []*shape.Mesh) error
	switch gc.Format {
	case "obj":
		write = shape.WriteOBJ
	case "yaml":
		write = shape.WriteYAML
	default:
		return fmt.Errorf("unknown format %q: must be obj or yaml", gc.Format)
	}

	meshes := gc.Sphere.Sphere()
	nm, nv, ni := gc.Sphere.Size()
	slog.Info("generated cube-sphere", "meshes", nm, "vertices", nv, "indices", ni)

	if gc.Heightmap != "" {
		fn, err := expandPath(gc.Heightmap)
		if err != nil {
			return err
		}
		hm, err := heightmap.Open(fn, heightmap.Options{Blur: gc.Blur})
		if err != nil {
			return err
		}
		meshes = heightmap.Displace(meshes, hm, gc.HeightScale)
		slog.Info("displaced by heightmap", "file", fn, "width", hm.Width, "height", hm.Height)
	}

	bb := math32.B3Empty()
	for _, ms := range meshes {
		bb.ExpandByPoints(ms.Vertices)
	}
	slog.Debug("bounds", "min", bb.Min, "max", bb.Max)

	if gc.Output == "-" {
		return write(stdout, meshes)
	}
	fn, err := expandPath(gc.Output)
	if err != nil {
		return err
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() { errors.Log(f.Close()) }()

	var w io.Writer = f
	if !quiet {
		bar := progressbar.NewOptions64(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("writing "+fn),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		w = io.MultiWriter(f, bar)
	}
	return write(w, meshes)
}
