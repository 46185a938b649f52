/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	require := require.New(t)

	seq := slices.Values([]int{1, 2, 3, 4})

	v, err := First(seq, func(i int) bool { return i%2 == 0 })
	require.NoError(err)
	require.Equal(2, v)

	v, err = First(seq, func(i int) bool { return i > 10 })
	require.ErrorIs(err, ErrNotFoundError)
	require.ErrorContains(err, "int")
	require.Zero(v)
}

func TestAssignableToAny(t *testing.T) {
	require := require.New(t)

	reader, writer := reflect.TypeFor[io.Reader](), reflect.TypeFor[io.Writer]()
	file := reflect.TypeFor[*os.File]()

	require.True(AssignableToAny(file, []reflect.Type{reader}))
	require.True(AssignableToAny(file, []reflect.Type{reflect.TypeFor[int](), writer}))
	require.False(AssignableToAny(reader, []reflect.Type{file}), "supertype is not assignable to subtype")
	require.False(AssignableToAny(file, nil))

	require.False(AssignableToAny(file, []reflect.Type{nil}))
	require.True(AssignableToAny(file, []reflect.Type{nil, reader}))
	require.False(AssignableToAny(nil, []reflect.Type{reader, nil}))
}

func TestErrors(t *testing.T) {
	percentMsg := "100%" // non-constant, so vet's printf check does not flag the intentional bare '%'
	tests := []struct {
		err  error
		is   error
		want string
	}{
		{ErrMissed("name"), ErrMissedError, "missed: name"},
		{ErrInvalid("value %d", 1), ErrInvalidError, "not valid: value 1"},
		{ErrAlreadyExists("class %q", "x"), ErrAlreadyExistsError, `already exists: class "x"`},
		{ErrNotFound("it"), ErrNotFoundError, "not found: it"},
		{ErrClassNotFound(reflect.TypeFor[int]()), ErrNotFoundError, "not found: class «int»"},
		{ErrFieldNotFound(reflect.TypeFor[os.File](), "fd"), ErrNotFoundError, "not found: field «fd» in os.File"},
		{EnrichError(io.EOF, percentMsg), io.EOF, "EOF: 100%"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require := require.New(t)
			require.ErrorIs(tt.err, tt.is)
			require.EqualError(tt.err, tt.want)
		})
	}

	t.Run("InaccessibleError", func(t *testing.T) {
		require := require.New(t)
		var err error = &InaccessibleError{
			Kind:       DeclKind_Field,
			Owner:      reflect.TypeFor[os.File](),
			Name:       "fd",
			Visibility: Visibility_PackagePrivate,
		}
		require.ErrorIs(err, ErrInaccessibleError)
		require.EqualError(err, "Field «fd» (PackagePrivate) in os.File is not accessible")

		wrapped := fmt.Errorf("open: %w", err)
		var ie *InaccessibleError
		require.True(errors.As(wrapped, &ie))
		require.Equal("fd", ie.Name)
	})
}

func TestStructTag(t *testing.T) {
	require := require.New(t)
	require.Equal(`json:"name,omitempty"`, StructTag{Key: "json", Value: "name,omitempty"}.String())
	require.Equal(reflect.TypeFor[StructTag](), TypeOf[StructTag]())
}
