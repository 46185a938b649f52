/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"iter"
	"reflect"
)

// IWithAnnotations is an interface for declarations with attached annotations.
//
// Annotation is any Go value attached to declaration, the annotation type is the dynamic type of the value.
type IWithAnnotations interface {
	// Returns annotations in attachment order.
	Annotations() iter.Seq[any]

	AnnotationCount() int

	// Returns is some annotation assignable to specified type.
	HasAnnotation(reflect.Type) bool

	// Returns first annotation assignable to specified type.
	//
	// Returns nil if not found.
	Annotation(reflect.Type) any
}

// IDeclaration is a common interface for constructors, fields and parameters.
type IDeclaration interface {
	IWithVisibility
	IWithAnnotations

	Kind() DeclKind

	// Returns the type which declares this declaration.
	Owner() reflect.Type

	// Returns simple name.
	//
	// Parameters may have empty names.
	Name() string

	String() string
}

// IConstructor is a function registered to produce owner instances.
//
// # Supports:
//   - IAccessible[IConstructor]
type IConstructor interface {
	IDeclaration

	MakeAccessible(instance any) IConstructor
	RequireAccessible(instance any) (IConstructor, error)
	IfAccessible(func(IConstructor)) IConstructor
	IfNotAccessible(func(IConstructor)) IConstructor

	// Returns parameters in declaration order.
	Parameters() iter.Seq[IParameter]

	ParameterCount() int

	// Returns parameter by index.
	//
	// # Panics:
	//   - if index out of range
	Parameter(int) IParameter

	// Returns parameter types in declaration order.
	//
	// Returned slice is a copy.
	ParameterTypes() []reflect.Type

	// Returns is last parameter variadic.
	IsVariadic() bool

	// Returns wrapped function.
	Func() reflect.Value

	// Calls constructor with specified arguments.
	//
	// Returns *InaccessibleError if constructor is not accessible.
	// Returns error if arguments are not valid or if constructor returns error.
	Invoke(args ...any) (any, error)
}

// IField is an owner struct field or a static (package level) variable.
//
// # Supports:
//   - IAccessible[IField]
type IField interface {
	IDeclaration

	MakeAccessible(instance any) IField
	RequireAccessible(instance any) (IField, error)
	IfAccessible(func(IField)) IField
	IfNotAccessible(func(IField)) IField

	// Returns field type.
	Type() reflect.Type

	// Returns field value.
	//
	// Instance should be nil for static fields and a value or a pointer to the owner for instance fields.
	// Returns *InaccessibleError if field is not accessible for instance.
	Get(instance any) (any, error)

	// Sets field value.
	//
	// Instance should be nil for static fields and a pointer to the owner for instance fields.
	// Nil value resets field to zero.
	// Returns *InaccessibleError if field is not accessible for instance.
	Set(instance, value any) error
}

// IParameter is a constructor parameter.
//
// Visibility and accessibility of parameter are those of its constructor.
//
// # Supports:
//   - IAccessible[IParameter]
type IParameter interface {
	IDeclaration

	MakeAccessible(instance any) IParameter
	RequireAccessible(instance any) (IParameter, error)
	IfAccessible(func(IParameter)) IParameter
	IfNotAccessible(func(IParameter)) IParameter

	// Returns parameter type.
	//
	// Variadic parameter has slice type.
	Type() reflect.Type

	// Returns parameter index in constructor.
	Index() int

	Constructor() IConstructor
}
