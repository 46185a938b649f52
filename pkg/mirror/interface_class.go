/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"iter"
	"reflect"
)

// IClass is a reflective description of a struct type.
type IClass interface {
	// Returns described struct type.
	Type() reflect.Type

	// Returns constructors in registration order.
	Constructors() iter.Seq[IConstructor]

	ConstructorCount() int

	// Returns struct fields in declaration order, then static fields in registration order.
	Fields() iter.Seq[IField]

	FieldCount() int

	// Returns field by name.
	//
	// Returns nil if not found.
	Field(name string) IField

	String() string
}

// IClasses is a set of described classes.
type IClasses interface {
	// Returns class by type. Pointer types are dereferenced.
	//
	// Returns nil if not found.
	Class(reflect.Type) IClass

	// Returns classes sorted by type string.
	Classes() iter.Seq[IClass]

	ClassCount() int
}
