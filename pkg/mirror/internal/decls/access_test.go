/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package decls

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/mirror/pkg/mirror"
)

// Host which counts elevation requests and grants them if allowed.
type testHost struct {
	allow bool
	calls int
}

func (h *testHost) CanElevate(mirror.IDeclaration, any) bool {
	h.calls++
	return h.allow
}

type point struct {
	X, y int
}

type pointError struct{ msg string }

func (e pointError) Error() string { return e.msg }

func newPoint(x, y int) point { return point{x, y} }

func testField(t *testing.T, h mirror.IHost, name string, vis mirror.Visibility) *Field {
	sf, ok := reflect.TypeFor[point]().FieldByName(name)
	require.True(t, ok)
	return NewField(h, reflect.TypeFor[point](), sf, vis, nil)
}

func TestAccessible_MakeAccessible(t *testing.T) {
	t.Run("public declaration does not ask host", func(t *testing.T) {
		require := require.New(t)
		h := &testHost{}
		f := testField(t, h, "X", mirror.Visibility_Public)
		require.True(f.IsAccessible(nil))
		f.MakeAccessible(nil)
		require.Zero(h.calls)
	})

	t.Run("elevation is asked once", func(t *testing.T) {
		require := require.New(t)
		h := &testHost{allow: true}
		f := testField(t, h, "y", mirror.Visibility_PackagePrivate)
		require.False(f.IsAccessible(nil))
		require.Zero(h.calls, "IsAccessible should not ask host")

		f.MakeAccessible(nil)
		f.MakeAccessible(&point{})
		require.Equal(1, h.calls)
		require.True(f.IsAccessible(nil))
	})

	t.Run("denied elevation is asked again", func(t *testing.T) {
		require := require.New(t)
		h := &testHost{}
		f := testField(t, h, "y", mirror.Visibility_PackagePrivate)
		f.MakeAccessible(nil)
		f.MakeAccessible(nil)
		require.Equal(2, h.calls)
		require.False(f.IsAccessible(nil))
	})

	t.Run("nil host never elevates", func(t *testing.T) {
		require := require.New(t)
		f := testField(t, nil, "y", mirror.Visibility_Protected)
		_, err := f.RequireAccessible(nil)
		require.ErrorIs(err, mirror.ErrInaccessibleError)
	})
}

func TestValidateConstructor(t *testing.T) {
	owner := reflect.TypeFor[point]()
	tests := []struct {
		name string
		fn   any
		err  error
	}{
		{"value result", newPoint, nil},
		{"pointer result", func() *point { return nil }, nil},
		{"with error", func() (point, error) { return point{}, nil }, nil},
		{"nil", nil, mirror.ErrMissedError},
		{"nil func", (func() point)(nil), mirror.ErrMissedError},
		{"not a func", point{}, mirror.ErrInvalidError},
		{"no results", func() {}, mirror.ErrInvalidError},
		{"other type", func() int { return 0 }, mirror.ErrInvalidError},
		{"pointer to pointer", func() **point { return nil }, mirror.ErrInvalidError},
		{"not error", func() (point, bool) { return point{}, false }, mirror.ErrInvalidError},
		{"pointer error", func() (point, *pointError) { return point{}, nil }, nil},
		{"error is never nil", func() (point, pointError) { return point{}, pointError{} }, mirror.ErrInvalidError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConstructor(owner, tt.fn)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name    string
		t       reflect.Type
		a       any
		zeroAny bool
		ok      bool
	}{
		{"assignable", reflect.TypeFor[int](), 1, false, true},
		{"not assignable", reflect.TypeFor[int](), "1", false, false},
		{"nil pointer", reflect.TypeFor[*int](), nil, false, true},
		{"nil slice", reflect.TypeFor[[]int](), nil, false, true},
		{"nil interface", reflect.TypeFor[error](), nil, false, true},
		{"nil int", reflect.TypeFor[int](), nil, false, false},
		{"nil int zeroed", reflect.TypeFor[int](), nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := valueOf(tt.t, tt.a, tt.zeroAny)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.True(t, v.Type().AssignableTo(tt.t))
			}
		})
	}
}

func TestConstructor_String(t *testing.T) {
	require := require.New(t)

	c := NewConstructor(nil, reflect.TypeFor[point](), reflect.ValueOf(newPoint), "newPoint",
		mirror.Visibility_PackagePrivate, nil, []ParamDesc{{Name: "x"}})
	require.Equal("Constructor «newPoint(int, int)»", c.String())
	require.Equal("Parameter «newPoint#0 x int»", c.Parameter(0).String())
	require.Equal("Parameter «newPoint#1 int»", c.Parameter(1).String())
	require.Equal(mirror.Visibility_PackagePrivate, c.Parameter(1).Visibility())
	require.False(c.Parameter(1).IsAccessible(nil))
}

func TestConstructor_InvokeErrorResult(t *testing.T) {
	owner := reflect.TypeFor[point]()
	public := func(fn any) *Constructor {
		return NewConstructor(nil, owner, reflect.ValueOf(fn), "fn", mirror.Visibility_Public, nil, nil)
	}

	t.Run("nil pointer error", func(t *testing.T) {
		require := require.New(t)
		v, err := public(func() (point, *pointError) { return point{X: 1}, nil }).Invoke()
		require.NoError(err)
		require.Equal(point{X: 1}, v)
	})

	t.Run("pointer error", func(t *testing.T) {
		require := require.New(t)
		v, err := public(func() (point, *pointError) { return point{}, &pointError{"fail"} }).Invoke()
		require.EqualError(err, "fail")
		require.Nil(v)
	})

	t.Run("value error is always returned", func(t *testing.T) {
		require := require.New(t)
		v, err := public(func() (point, pointError) { return point{}, pointError{"fail"} }).Invoke()
		require.EqualError(err, "fail")
		require.Nil(v)
	})
}

func TestWithAnnotations(t *testing.T) {
	require := require.New(t)

	a := makeWithAnnotations(pointError{"x"}, mirror.StructTag{Key: "json", Value: "x"})
	require.Equal(2, a.AnnotationCount())
	require.True(a.HasAnnotation(errorType))
	require.Equal(pointError{"x"}, a.Annotation(errorType))
	require.False(a.HasAnnotation(reflect.TypeFor[int]()))

	require.False(a.HasAnnotation(nil))
	require.Nil(a.Annotation(nil))
}
