// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xform reads declarative descriptions of named affine
// transforms from TOML or YAML documents and turns them into
// [math32.Matrix3x4] values, which can be chained through parents,
// composed, inverted and summarized in a [Report].
package xform

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/affine/base/errors"
	"cogentcore.org/affine/base/iox/tomlx"
	"cogentcore.org/affine/base/iox/yamlx"
	"cogentcore.org/affine/math32"
	"github.com/jinzhu/copier"
)

// ErrInvalid is returned for documents and transforms that cannot
// be turned into a matrix, such as a transform with two rotations.
var ErrInvalid = errors.New("invalid transform")

// Document is a set of named transforms.
type Document struct {

	// Order is the default Euler order of transforms given with Euler
	// angles, such as "XYZ" or "ZYX". It defaults to XYZ.
	Order string `toml:"order,omitempty" yaml:"order,omitempty"`

	// Degrees means that all angles in the document are in degrees
	// instead of radians.
	Degrees bool `toml:"degrees,omitempty" yaml:"degrees,omitempty"`

	// Normalize normalizes quaternions and rotation axes instead of
	// rejecting them when they are not unit length.
	Normalize bool `toml:"normalize,omitempty" yaml:"normalize,omitempty"`

	// Compose lists transform names to multiply together, outermost
	// first: the last one is applied first to a point.
	Compose []string `toml:"compose,omitempty" yaml:"compose,omitempty"`

	// Transforms are the named transforms of the document.
	Transforms []Transform `toml:"transform" yaml:"transforms"`
}

// Format is the encoding of a [Document] file.
type Format int32

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromFilename returns the format for the extension of the given
// file name: .toml, or .yaml and .yml.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("xform: unknown document format for %q: %w", filename, ErrInvalid)
}

// Open reads a document from the given file, with the format given by
// its extension, and validates it.
func Open(filename string) (*Document, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	d := &Document{}
	switch f {
	case TOML:
		err = tomlx.Open(d, filename)
	case YAML:
		err = yamlx.Open(d, filename)
	}
	if err != nil {
		return nil, errors.Wrap(err, "xform: "+filename)
	}
	return d, errors.Wrap(d.Validate(), filename)
}

// Read reads and validates a document in the given format.
func Read(r io.Reader, f Format) (*Document, error) {
	d := &Document{}
	var err error
	switch f {
	case TOML:
		err = tomlx.Read(d, r)
	case YAML:
		err = yamlx.Read(d, r)
	}
	if err != nil {
		return nil, err
	}
	return d, d.Validate()
}

// ReadBytes reads and validates a document from the given bytes.
func ReadBytes(data []byte, f Format) (*Document, error) {
	return Read(strings.NewReader(string(data)), f)
}

// Save writes the document to the given file, with the format
// given by its extension.
func (d *Document) Save(filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	if f == YAML {
		return yamlx.Save(d, filename)
	}
	return tomlx.Save(d, filename)
}

// EulerOrder returns the default Euler order of the document.
func (d *Document) EulerOrder() (math32.EulerOrder, error) {
	return parseOrder(d.Order)
}

func parseOrder(s string) (math32.EulerOrder, error) {
	if s == "" {
		return math32.EulerXYZ, nil
	}
	var o math32.EulerOrder
	err := o.SetString(s)
	return o, err
}

// Transform returns the transform with the given name, or nil.
func (d *Document) Transform(name string) *Transform {
	for i := range d.Transforms {
		if d.Transforms[i].Name == name {
			return &d.Transforms[i]
		}
	}
	return nil
}

// Names returns the names of the transforms in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Transforms))
	for i, t := range d.Transforms {
		names[i] = t.Name
	}
	return names
}

// Validate checks that every transform has a unique name, that parents
// and composed names exist, and that every matrix can be built.
// All problems found are joined in the returned error.
func (d *Document) Validate() error {
	var errs []error
	if _, err := d.EulerOrder(); err != nil {
		errs = append(errs, err)
	}
	seen := map[string]bool{}
	for i := range d.Transforms {
		t := &d.Transforms[i]
		switch {
		case t.Name == "":
			errs = append(errs, fmt.Errorf("xform: transform %d has no name: %w", i, ErrInvalid))
			continue
		case seen[t.Name]:
			errs = append(errs, fmt.Errorf("xform: duplicate transform %q: %w", t.Name, ErrInvalid))
			continue
		}
		seen[t.Name] = true
	}
	for _, t := range d.Transforms {
		if t.Parent != "" && d.Transform(t.Parent) == nil {
			errs = append(errs, fmt.Errorf("xform: transform %q: unknown parent %q: %w", t.Name, t.Parent, ErrInvalid))
			continue
		}
		if _, err := d.World(t.Name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range d.Compose {
		if d.Transform(c) == nil {
			errs = append(errs, fmt.Errorf("xform: compose: unknown transform %q: %w", c, ErrInvalid))
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{}
	errors.Log(copier.CopyWithOption(c, d, copier.Option{DeepCopy: true}))
	return c
}

// Baked returns a copy of the document in which every transform is
// replaced by an explicit matrix of its world transform, with no parent.
func (d *Document) Baked() (*Document, error) {
	b := d.Clone()
	for i, t := range d.Transforms {
		w, err := d.World(t.Name)
		if err != nil {
			return nil, err
		}
		a := w.Array()
		b.Transforms[i] = Transform{Name: t.Name, Matrix: a[:]}
	}
	return b, nil
}
