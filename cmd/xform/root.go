// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/affine/base/iox/tomlx"
	"cogentcore.org/affine/base/iox/yamlx"
	"cogentcore.org/affine/logx"
	"cogentcore.org/affine/math32"
	"cogentcore.org/affine/xform"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// config holds the values of the global flags.
type config struct {
	verbose     bool
	veryVerbose bool
	quiet       bool

	// order overrides the Euler order of the document in reports.
	order string

	// degrees reports Euler angles in degrees.
	degrees bool

	tolerance float32

	// format is the report format: text, toml or yaml.
	format string
}

func newRootCmd() *cobra.Command {
	c := &config{}
	root := &cobra.Command{
		Use:           "xform",
		Short:         "Inspect affine transform documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(c.veryVerbose, c.verbose, c.quiet)
			logx.SetDefaultLogger()
			if c.tolerance <= 0 {
				return fmt.Errorf("tolerance must be positive, not %g", c.tolerance)
			}
			switch c.format {
			case "text", "toml", "yaml":
				return nil
			}
			return fmt.Errorf("unknown format %q, must be text, toml or yaml", c.format)
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&c.veryVerbose, "very-verbose", false, "show debug log messages")
	pf.BoolVarP(&c.quiet, "quiet", "q", false, "only show error log messages")
	pf.StringVar(&c.order, "order", "", "Euler order of reported angles, overriding the document order")
	pf.BoolVar(&c.degrees, "degrees", false, "report angles in degrees")
	pf.Float32Var(&c.tolerance, "tolerance", math32.DefaultTolerance, "tolerance of structural tests")
	pf.StringVar(&c.format, "format", "text", "report format: text, toml or yaml")

	root.AddCommand(c.inspectCmd(), c.composeCmd(), c.eulerCmd(), c.invertCmd(), c.applyCmd(), c.bakeCmd())
	return root
}

// open opens the named document, expanding a leading ~.
func open(filename string) (*xform.Document, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	return xform.Open(fn)
}

// reportOptions returns the Euler order and degrees setting for
// reports on d, from the flags and the document.
func (c *config) reportOptions(d *xform.Document) (math32.EulerOrder, bool, error) {
	var order math32.EulerOrder
	var err error
	if c.order != "" {
		err = order.SetString(c.order)
	} else {
		order, err = d.EulerOrder()
	}
	return order, c.degrees || d.Degrees, err
}

// writeReports writes the reports in the configured format.
func (c *config) writeReports(w io.Writer, rs []*xform.Report) error {
	switch c.format {
	case "toml":
		return tomlx.Write(struct {
			Report []*xform.Report `toml:"report"`
		}{rs}, w)
	case "yaml":
		return yamlx.Write(rs, w)
	}
	out := termenv.NewOutput(w)
	for _, r := range rs {
		if err := writeReport(out, r); err != nil {
			return err
		}
	}
	return nil
}

// writeReport writes the text form of r, with its name in bold and
// its decomposition and flags highlighted.
func writeReport(out *termenv.Output, r *xform.Report) error {
	// the first line of the text is the name
	_, text, _ := strings.Cut(r.String(), "\n")
	s := out.String(r.Name).Bold().String() + "\n" + text
	if !r.Decomposed {
		s += out.String("  not decomposable").Foreground(out.Color("3")).String() + "\n"
	}
	if r.InverseKind == "" {
		s += out.String("  singular").Foreground(out.Color("1")).String() + "\n"
	}
	_, err := io.WriteString(out, s)
	return err
}
