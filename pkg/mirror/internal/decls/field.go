/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package decls

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/voedger/mirror/pkg/mirror"
)

// # Supports:
//   - mirror.IField
//   - mirror.IAccessible[mirror.IField]
type Field struct {
	Accessible[mirror.IField]
	Declaration
	typ   reflect.Type
	index int           // struct field index, instance fields only
	ptr   reflect.Value // pointer to variable, static fields only
}

// Creates new instance field from struct field.
func NewField(host mirror.IHost, owner reflect.Type, sf reflect.StructField, vis mirror.Visibility, annotations []any) *Field {
	f := &Field{
		Declaration: makeDeclaration(mirror.DeclKind_Field, owner, sf.Name, annotations...),
		typ:         sf.Type,
		index:       sf.Index[0],
	}
	f.init(host, vis, false)
	return f
}

// Creates new static field from pointer to package level variable.
func NewStaticField(host mirror.IHost, owner reflect.Type, name string, ptr reflect.Value, vis mirror.Visibility, annotations []any) *Field {
	f := &Field{
		Declaration: makeDeclaration(mirror.DeclKind_Field, owner, name, annotations...),
		typ:         ptr.Type().Elem(),
		index:       -1,
		ptr:         ptr,
	}
	f.init(host, vis, true)
	return f
}

func (f *Field) init(host mirror.IHost, vis mirror.Visibility, static bool) {
	g := newGate(host, vis, static)
	g.decl = f
	f.Accessible = makeAccessible[mirror.IField](f, f, g)
}

func (f *Field) Type() reflect.Type { return f.typ }

func (f *Field) Get(instance any) (any, error) {
	if !f.IsAccessible(instance) {
		return nil, mirror.ErrInaccessible(f)
	}
	v, err := f.value(instance, false)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func (f *Field) Set(instance, value any) error {
	if !f.IsAccessible(instance) {
		return mirror.ErrInaccessible(f)
	}
	v, err := f.value(instance, true)
	if err != nil {
		return err
	}
	val, ok := valueOf(f.typ, value, true)
	if !ok {
		return mirror.ErrInvalid("%T is not assignable to %v", value, f)
	}
	v.Set(val)
	return nil
}

// Returns settable value of field for instance.
//
// Value instance is copied, so it is suitable for reading only.
func (f *Field) value(instance any, write bool) (reflect.Value, error) {
	if f.IsStatic() {
		return f.ptr.Elem(), nil
	}

	if instance == nil {
		return reflect.Value{}, mirror.ErrMissed("instance of %v to access %v", f.Owner(), f)
	}

	v := reflect.ValueOf(instance)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	} else {
		if write {
			return reflect.Value{}, mirror.ErrInvalid("pointer to %v expected to change %v, got %T", f.Owner(), f, instance)
		}
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		v = c
	}

	fv := v.Field(f.index)
	if !fv.CanSet() {
		// unexported field, accessibility is checked by caller
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	return fv, nil
}

func (f *Field) String() string {
	return fmt.Sprintf("%s «%s.%s»", f.Kind().TrimString(), f.Owner().Name(), f.Name())
}
