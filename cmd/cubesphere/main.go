// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cubesphere generates cube-sphere meshes and drives the
// per-frame uniforms of the cube-sphere renderer.
package main

import (
	"os"

	"cogentcore.org/cubesphere/logx"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// verbosity flags shared by all commands
var (
	verbose     bool
	veryVerbose bool
	quiet       bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cubesphere",
		Short:        "Generate cube-sphere meshes and per-frame uniforms",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(newGenerateCmd(), newLayoutCmd(), newFrameCmd())
	return root
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) (string, error) {
	if path == "" || path == "-" {
		return path, nil
	}
	return homedir.Expand(path)
}
