/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package classes

import (
	"reflect"

	"github.com/voedger/mirror/pkg/mirror"
)

// IClassesBuilder registers classes and builds mirror.IClasses.
type IClassesBuilder interface {
	// Adds class for struct type. Pointer type is dereferenced.
	//
	// # Panics:
	//   - if type is not a struct,
	//   - if class for type already added.
	AddClass(reflect.Type) IClassBuilder

	// Binds struct tag key to annotation factory.
	//
	// Tag value is passed to factory, the result is attached to field as annotation.
	// Tag keys without bound factory produce mirror.StructTag annotations.
	BindTag(key string, f func(value string) any) IClassesBuilder

	// Builds classes.
	//
	// Returns all registration errors joined.
	Build() (mirror.IClasses, error)

	// Builds classes.
	//
	// # Panics:
	//   - if Build() returns error
	MustBuild() mirror.IClasses
}

// IClassBuilder registers class constructors and fields.
type IClassBuilder interface {
	Type() reflect.Type

	// Adds constructor.
	//
	// Function should return (T), (*T), (T, error) or (*T, error), where T is class type.
	// Constructor name is Named() option or short function name.
	// Visibility is WithVisibility() option or visibility of name.
	AddConstructor(fn any, opts ...Option) IClassBuilder

	// Adds static field.
	//
	// Ptr should be a non-nil pointer to package level variable.
	AddStaticField(name string, ptr any, opts ...Option) IClassBuilder

	// Decorates existing struct field with annotations and visibility.
	Field(name string, opts ...Option) IClassBuilder
}
