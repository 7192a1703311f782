// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/affine/base/errors"
	"cogentcore.org/affine/math32"
	"cogentcore.org/affine/xform"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func (c *config) inspectCmd() *cobra.Command {
	watch := false
	cmd := &cobra.Command{
		Use:   "inspect file [name...]",
		Short: "Report the world matrix of the named transforms, or of all of them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watch {
				d, err := open(args[0])
				if err != nil {
					return err
				}
				return c.inspect(cmd, d, args[1:])
			}
			fn, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			return xform.Watch(cmd.Context(), fn, func(d *xform.Document, err error) {
				if err == nil {
					err = c.inspect(cmd, d, args[1:])
				}
				errors.Log(err)
			})
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "report again every time the file changes")
	return cmd
}

func (c *config) inspect(cmd *cobra.Command, d *xform.Document, names []string) error {
	order, degrees, err := c.reportOptions(d)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = d.Names()
	}
	rs := make([]*xform.Report, 0, len(names))
	for _, n := range names {
		m, err := d.World(n)
		if err != nil {
			return err
		}
		r := xform.NewReport(n, m, order, degrees, c.tolerance)
		if !r.Decomposed {
			slog.Info("transform cannot be decomposed", "name", n, "reason", r.DecomposeError)
		}
		rs = append(rs, r)
	}
	return c.writeReports(cmd.OutOrStdout(), rs)
}

func (c *config) composeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose file [name...]",
		Short: "Report the product of the named transforms, outermost first, or of the document compose list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := open(args[0])
			if err != nil {
				return err
			}
			order, degrees, err := c.reportOptions(d)
			if err != nil {
				return err
			}
			names := args[1:]
			if len(names) == 0 {
				names = d.Compose
			}
			m, err := d.Composed(names...)
			if err != nil {
				return err
			}
			r := xform.NewReport(strings.Join(names, " * "), m, order, degrees, c.tolerance)
			return c.writeReports(cmd.OutOrStdout(), []*xform.Report{r})
		},
	}
}

func (c *config) eulerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "euler order a b c",
		Short: "Show the rotation of the given Euler angles, and its angles in every order",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var order math32.EulerOrder
			if err := order.SetString(args[0]); err != nil {
				return err
			}
			a, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			angles := math32.Vec3(a[0], a[1], a[2])
			if c.degrees {
				angles.Set(math32.DegToRad(angles.X), math32.DegToRad(angles.Y), math32.DegToRad(angles.Z))
			}
			m := math32.Matrix3x4FromEuler(order, angles)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%v\n", m)
			for _, o := range math32.EulerOrderValues() {
				e := m.ToEuler(o)
				if c.degrees {
					e.Set(math32.RadToDeg(e.X), math32.RadToDeg(e.Y), math32.RadToDeg(e.Z))
				}
				fmt.Fprintf(w, "%s %.4f %.4f %.4f\n", o, e.X, e.Y, e.Z)
			}
			return nil
		},
	}
}

func (c *config) invertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invert file name",
		Short: "Show the inverse of the world matrix of a transform",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := open(args[0])
			if err != nil {
				return err
			}
			m, err := d.World(args[1])
			if err != nil {
				return err
			}
			inv, kind, err := xform.Invert(m, c.tolerance)
			if err != nil {
				return errors.Wrap(err, args[1])
			}
			if !inv.Mul(m).IsIdentity(c.tolerance) {
				slog.Warn("inverse is not accurate", "name", args[1], "det", m.Determinant())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%v\n", args[1], kind, inv)
			return nil
		},
	}
}

func (c *config) applyCmd() *cobra.Command {
	dirs := false
	cmd := &cobra.Command{
		Use:   "apply file name x,y,z...",
		Short: "Transform points, or directions with --dirs, by the world matrix of a transform",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := open(args[0])
			if err != nil {
				return err
			}
			m, err := d.World(args[1])
			if err != nil {
				return err
			}
			pts := make([]math32.Vector3, len(args)-2)
			for i, a := range args[2:] {
				v, err := parseFloats(strings.Split(a, ","))
				if err != nil {
					return err
				}
				if len(v) != 3 {
					return fmt.Errorf("point %q needs 3 values", a)
				}
				pts[i] = math32.Vec3(v[0], v[1], v[2])
			}
			if dirs {
				m.BatchTransformDir(pts)
			} else {
				m.BatchTransformPoint(pts)
			}
			for _, p := range pts {
				fmt.Fprintf(cmd.OutOrStdout(), "%g,%g,%g\n", p.X, p.Y, p.Z)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dirs, "dirs", false, "transform directions, ignoring translation")
	return cmd
}

func (c *config) bakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bake file out",
		Short: "Write a copy of a document with every transform replaced by its world matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := open(args[0])
			if err != nil {
				return err
			}
			b, err := d.Baked()
			if err != nil {
				return err
			}
			out, err := homedir.Expand(args[1])
			if err != nil {
				return err
			}
			slog.Info("baking", "from", args[0], "to", out, "transforms", len(b.Transforms))
			return b.Save(out)
		},
	}
}

func parseFloats(ss []string) ([]float32, error) {
	fs := make([]float32, len(ss))
	for i, s := range ss {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return nil, err
		}
		fs[i] = float32(f)
	}
	return fs, nil
}
