// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/affine/base/errors"
	"cogentcore.org/affine/base/iox/tomlx"
	"cogentcore.org/affine/base/iox/yamlx"
	"cogentcore.org/affine/base/tolassert"
	"cogentcore.org/affine/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-4)

func assertMatrix(t *testing.T, expected, actual math32.Matrix3x4) {
	t.Helper()
	e, a := expected.Array(), actual.Array()
	tolassert.EqualTolSlice(t, e[:], a[:], tol, "expected %v, got %v", expected, actual)
}

func assertVector3(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	assert.True(t, expected.IsEqualTol(actual, 1e-3), "expected %v, got %v", expected, actual)
}

func TestFormatFromFilename(t *testing.T) {
	f, err := FormatFromFilename("a/b.TOML")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)
	f, err = FormatFromFilename("b.yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	assert.Equal(t, "yaml", f.String())
	_, err = FormatFromFilename("b.json")
	assert.ErrorIs(t, err, ErrInvalid)
}

func testArm(t *testing.T, d *Document) {
	assert.Equal(t, []string{"base", "elbow", "mirror", "sheared"}, d.Names())
	order, err := d.EulerOrder()
	require.NoError(t, err)
	assert.Equal(t, math32.EulerZYX, order)

	base, err := d.World("base")
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(1, 3, 3), base.TransformPoint(math32.Vec3(1, 0, 0)))

	elbow, err := d.World("elbow")
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(-2, 2, 3), elbow.TransformPoint(math32.Vec3(1, 0, 0)))

	c, err := d.Composed()
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(-1, 3, 3), c.TransformPoint(math32.Vec3(1, 0, 0)))

	mirror, err := d.World("mirror")
	require.NoError(t, err)
	assertMatrix(t, math32.NewMatrix3x4(-1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0), mirror)
}

func TestOpenTOML(t *testing.T) {
	d, err := Open(filepath.Join("testdata", "arm.toml"))
	require.NoError(t, err)
	testArm(t, d)
}

func TestOpenYAML(t *testing.T) {
	d, err := Open(filepath.Join("testdata", "arm.yaml"))
	require.NoError(t, err)
	testArm(t, d)
}

func TestSave(t *testing.T) {
	d, err := Open(filepath.Join("testdata", "arm.toml"))
	require.NoError(t, err)
	for _, name := range []string{"arm.toml", "arm.yaml"} {
		fn := filepath.Join(t.TempDir(), name)
		require.NoError(t, d.Save(fn))
		d2, err := Open(fn)
		require.NoError(t, err, name)
		testArm(t, d2)
	}
	assert.ErrorIs(t, d.Save(filepath.Join(t.TempDir(), "arm.txt")), ErrInvalid)
}

func TestLocal(t *testing.T) {
	d := &Document{}
	m, err := d.Local(&Transform{Name: "m", Matrix: []float32{1, 0, 0, 4, 0, 1, 0, 5, 0, 0, 1, 6}})
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(4, 5, 6), m.TranslatePart())

	m, err = d.Local(&Transform{Name: "s", Scale: []float32{1, 2, 3}, Euler: []float32{0, 0, math32.Pi / 2}})
	require.NoError(t, err)
	// scale is applied before the rotation
	assertVector3(t, math32.Vec3(0, 1, 0), m.TransformPoint(math32.Vec3(1, 0, 0)))
	assertVector3(t, math32.Vec3(-2, 0, 0), m.TransformPoint(math32.Vec3(0, 1, 0)))

	m, err = d.Local(&Transform{Name: "q", Quat: []float32{0, 0, 0, 1}, Translate: []float32{1, 1, 1}})
	require.NoError(t, err)
	assertMatrix(t, math32.Matrix3x4FromCols(math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1), math32.Vec3(1, 1, 1)), m)

	m, err = d.Local(&Transform{Name: "ft", From: []float32{1, 0, 0}, To: []float32{0, 3, 0}})
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(0, 1, 0), m.TransformDir(math32.Vec3(1, 0, 0)))

	m, err = d.Local(&Transform{Name: "p", Project: &Plane{Normal: []float32{0, 0, 1}, Offset: -2}})
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(3, 4, 2), m.TransformPoint(math32.Vec3(3, 4, 9)))

	m, err = d.Local(&Transform{Name: "o", Ortho: &Ortho{Near: 1, Far: 3, Width: 4, Height: 2}})
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(1, 1, -1), m.TransformPoint(math32.Vec3(2, 1, -1)))

	m, err = d.Local(&Transform{Name: "sh", Shear: []float32{0, 0, 0, 0, 1, 0}})
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(1, 0, 1), m.TransformPoint(math32.Vec3(1, 0, 0)))
}

func TestLocalErrors(t *testing.T) {
	d := &Document{}
	for _, tr := range []Transform{
		{Name: "two-kinds", Matrix: make([]float32, 12), Translate: []float32{1, 2, 3}},
		{Name: "two-rotations", Euler: []float32{0, 0, 0}, Quat: []float32{0, 0, 0, 1}},
		{Name: "matrix-len", Matrix: make([]float32, 9)},
		{Name: "scale-len", Scale: []float32{1, 2}},
		{Name: "shear-len", Shear: []float32{1}},
		{Name: "zero-from", From: []float32{0, 0, 0}, To: []float32{1, 0, 0}},
		{Name: "no-to", From: []float32{1, 0, 0}},
	} {
		_, err := d.Local(&tr)
		assert.ErrorIs(t, err, ErrInvalid, tr.Name)
	}
	for _, tr := range []Transform{
		{Name: "quat", Quat: []float32{0, 0, 1, 1}},
		{Name: "axis", Axis: []float32{0, 0, 2}, Angle: 1},
		{Name: "order", Euler: []float32{0, 0, 0}, Order: "XYW"},
		{Name: "reflect", Reflect: &Plane{Normal: []float32{0, 0, 0}}},
		{Name: "ortho", Ortho: &Ortho{Near: 1, Far: 1, Width: 1, Height: 1}},
	} {
		_, err := d.Local(&tr)
		assert.ErrorIs(t, err, math32.ErrInvalidArgument, tr.Name)
	}

	d.Normalize = true
	m, err := d.Local(&Transform{Name: "quat", Quat: []float32{0, 0, 1, 1}})
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(0, 1, 0), m.TransformDir(math32.Vec3(1, 0, 0)))
	m, err = d.Local(&Transform{Name: "axis", Axis: []float32{0, 0, 2}, Angle: math32.Pi / 2})
	require.NoError(t, err)
	assertVector3(t, math32.Vec3(0, 1, 0), m.TransformDir(math32.Vec3(1, 0, 0)))
	_, err = d.Local(&Transform{Name: "zero", Quat: []float32{0, 0, 0, 0}})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	_, err := ReadBytes([]byte(`
[[transform]]
name = "a"
parent = "b"

[[transform]]
name = "b"
parent = "a"

[[transform]]
name = "a"

[[transform]]
translate = [1.0, 2.0, 3.0]
`), TOML)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "duplicate")
	assert.Contains(t, err.Error(), "cycle")
	assert.Contains(t, err.Error(), "no name")

	_, err = ReadBytes([]byte("compose: [nope]\ntransforms: []\n"), YAML)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = ReadBytes([]byte("order = \"ABC\"\n"), TOML)
	assert.ErrorIs(t, err, math32.ErrInvalidArgument)

	_, err = ReadBytes([]byte("unknown = 1.0\n"), TOML)
	assert.Error(t, err)

	d, err := ReadBytes([]byte("transforms: []\n"), YAML)
	require.NoError(t, err)
	_, err = d.Composed()
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = d.World("missing")
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestInvert(t *testing.T) {
	rot := math32.Matrix3x4FromTRS(math32.Vec3(1, 2, 3), math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), 0.5), math32.Vector3Scalar(1))
	tests := []struct {
		m    math32.Matrix3x4
		kind InverseKind
	}{
		{rot, NoScale},
		{rot.MulScale(math32.Matrix3x4UniformScale(3)), UniformScale},
		{rot.MulScale(math32.Matrix3x4Scale(math32.Vec3(1, 2, 3))), Affine},
		{rot.Mul(math32.Matrix3x4ShearY(0.5, 0.25)), General},
	}
	for _, test := range tests {
		inv, kind, err := Invert(test.m, tol)
		require.NoError(t, err)
		assert.Equal(t, test.kind, kind)
		assertMatrix(t, math32.Identity3x4(), inv.Mul(test.m))
	}
	_, _, err := Invert(math32.Matrix3x4FromMatrix3(math32.Matrix3Diagonal(1, 0, 1)), tol)
	assert.ErrorIs(t, err, math32.ErrSingular)
}

func TestReports(t *testing.T) {
	d, err := Open(filepath.Join("testdata", "arm.toml"))
	require.NoError(t, err)
	rs, err := d.Reports(tol)
	require.NoError(t, err)
	require.Len(t, rs, 4)

	base := rs[0]
	assert.Equal(t, "base", base.Name)
	assert.True(t, base.Decomposed)
	assert.True(t, base.Degrees)
	assertVector3(t, math32.Vec3(90, 0, 0), base.Euler)
	assertVector3(t, math32.Vec3(1, 2, 3), base.Translate)
	assert.True(t, base.Quat.IsSameRotation(math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.Pi/2), 1e-3))
	assert.Equal(t, NoScale, base.InverseKind)
	assert.True(t, base.HasFlag("orthogonal"))
	assert.False(t, base.HasFlag("negative-scale"))
	assertVector3(t, math32.Vec3(0, 2, 3), base.Bounds.Min)
	assertVector3(t, math32.Vec3(1, 3, 4), base.Bounds.Max)

	elbow := rs[1]
	tolassert.EqualTol(t, 8, elbow.Determinant, 1e-3)
	assertVector3(t, math32.Vec3(2, 2, 2), elbow.Scale)
	assertVector3(t, math32.Vec3(0, 2, 3), elbow.Translate)
	assert.Equal(t, UniformScale, elbow.InverseKind)

	mirror := rs[2]
	tolassert.EqualTol(t, -1, mirror.Determinant, tol)
	assertVector3(t, math32.Vec3(-1, 1, 1), mirror.Scale)
	assert.True(t, mirror.HasFlag("negative-scale"))
	assert.True(t, mirror.HasFlag("symmetric"))
	assert.Equal(t, NoScale, mirror.InverseKind)

	sheared := rs[3]
	assert.False(t, sheared.Decomposed)
	assert.Contains(t, sheared.DecomposeError, "shear")
	assert.Equal(t, General, sheared.InverseKind)
	assert.True(t, sheared.HasFlag("upper-triangular"))
	assert.False(t, sheared.HasFlag("orthogonal-columns"))
	assert.Contains(t, sheared.String(), "decompose:")

	s := base.String()
	assert.Contains(t, s, "euler ZYX (deg)")
	assert.Contains(t, s, "inverse (no-scale)")

	b, err := tomlx.WriteBytes(base)
	require.NoError(t, err)
	assert.Contains(t, string(b), "inverse_kind")
	assert.Contains(t, string(b), "no-scale")
	b, err = yamlx.WriteBytes(sheared)
	require.NoError(t, err)
	assert.Contains(t, string(b), "decompose_error")

	singular := NewReport("flat", math32.MakeOrthographicProjectionXY(), math32.EulerXYZ, false, tol)
	assert.Empty(t, singular.InverseKind)
	assert.Contains(t, singular.String(), "inverse: singular")
	assert.Contains(t, singular.DecomposeError, "singular")
}

func TestClone(t *testing.T) {
	d, err := Open(filepath.Join("testdata", "arm.toml"))
	require.NoError(t, err)
	c := d.Clone()
	assert.Equal(t, d.Names(), c.Names())
	assert.Equal(t, d.Compose, c.Compose)
	c.Transforms[2].Reflect.Normal[0] = 5
	c.Compose[0] = "base"
	assert.Equal(t, float32(2), d.Transforms[2].Reflect.Normal[0])
	assert.Equal(t, "mirror", d.Compose[0])

	b, err := d.Baked()
	require.NoError(t, err)
	assert.Equal(t, d.Names(), b.Names())
	assert.Empty(t, b.Transforms[1].Parent)
	require.NoError(t, b.Validate())
	for _, name := range d.Names() {
		w, err := d.World(name)
		require.NoError(t, err)
		bw, err := b.World(name)
		require.NoError(t, err)
		assertMatrix(t, w, bw)
	}
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "w.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("transforms: [{name: a}]\n"), 0666))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs := make(chan *Document, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(d *Document, err error) {
			if err == nil {
				docs <- d
			}
		})
	}()
	next := func() *Document {
		select {
		case d := <-docs:
			return d
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for document")
		}
		return nil
	}
	assert.Equal(t, []string{"a"}, next().Names())

	require.NoError(t, os.WriteFile(fn, []byte("transforms: [{name: a}, {name: b}]\n"), 0666))
	for {
		// a write can be seen before it is complete, so skip partial documents
		if d := next(); len(d.Transforms) == 2 {
			break
		}
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
