/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"iter"
	"reflect"
)

// IFilter is a predicate over declarations of type T.
//
// Filter matches declaration if all criteria set in filter are passed.
// Filter without criteria matches every declaration.
//
// Filters are mutable builders: they are not safe to be changed concurrently.
// Concurrent matching by unchanged filter is safe.
type IFilter[T any] interface {
	// Returns is declaration matched by filter.
	Match(T) bool

	// Returns declarations matched by filter.
	Matches(iter.Seq[T]) iter.Seq[T]

	String() string
}

// IConstructorFilter filters constructors by parameter types and annotations.
type IConstructorFilter interface {
	IFilter[IConstructor]

	// Sets empty parameter types pool: constructor passes only if it has no parameters.
	WithNoParameters() IConstructorFilter

	// Sets parameter types pool.
	//
	// Constructor passes if every its parameter is assignable to at least one of
	// pool types. Pool is not required to be fully covered, arity is not checked.
	// Default operation is RewriteOperation_Append.
	WithParameters(types []reflect.Type, op ...RewriteOperation) IConstructorFilter

	// Adds or replaces parameter type in pool.
	WithParameter(t reflect.Type, op ...RewriteOperation) IConstructorFilter

	// Clears parameter types criterion.
	ClearParameters() IConstructorFilter

	// Returns parameter types pool and is criterion set.
	Parameters() ([]reflect.Type, bool)

	// Sets required annotation types.
	//
	// Constructor passes if it has at least one annotation and every attached
	// annotation is assignable to at least one of required types.
	// Default operation is RewriteOperation_Append.
	WithAnnotations(types []reflect.Type, op ...RewriteOperation) IConstructorFilter

	// Adds or replaces required annotation type.
	WithAnnotation(t reflect.Type, op ...RewriteOperation) IConstructorFilter

	// Sets empty required annotation types: constructor passes only if it has no annotations.
	WithNoAnnotations() IConstructorFilter

	// Clears annotation criterion.
	ClearAnnotations() IConstructorFilter

	// Returns required annotation types and is criterion set.
	Annotations() ([]reflect.Type, bool)

	// Returns independent copy of filter.
	Copy() IConstructorFilter
}

// IFieldFilter filters fields by name, type and annotations.
type IFieldFilter interface {
	IFilter[IField]

	// Sets required name.
	//
	// Name is matched exactly. Empty name never matches.
	WithName(string) IFieldFilter

	// Clears name criterion.
	ClearName() IFieldFilter

	// Returns required name and is criterion set.
	Name() (string, bool)

	// Sets required type.
	//
	// Field passes if its type is assignable to required type.
	OfType(reflect.Type) IFieldFilter

	// Clears type criterion.
	ClearType() IFieldFilter

	// Returns required type or nil if criterion is not set.
	Type() reflect.Type

	// Sets required annotation types.
	//
	// Field passes if it has at least one annotation and every attached
	// annotation is assignable to at least one of required types.
	// Default operation is RewriteOperation_Append.
	WithAnnotations(types []reflect.Type, op ...RewriteOperation) IFieldFilter

	// Adds or replaces required annotation type.
	WithAnnotation(t reflect.Type, op ...RewriteOperation) IFieldFilter

	// Sets empty required annotation types: field passes only if it has no annotations.
	WithNoAnnotations() IFieldFilter

	// Clears annotation criterion.
	ClearAnnotations() IFieldFilter

	// Returns required annotation types and is criterion set.
	Annotations() ([]reflect.Type, bool)

	// Returns independent copy of filter.
	Copy() IFieldFilter
}

// IParameterFilter filters parameters by name, type and annotations.
type IParameterFilter interface {
	IFilter[IParameter]

	WithName(string) IParameterFilter
	ClearName() IParameterFilter
	Name() (string, bool)

	OfType(reflect.Type) IParameterFilter
	ClearType() IParameterFilter
	Type() reflect.Type

	WithAnnotations(types []reflect.Type, op ...RewriteOperation) IParameterFilter
	WithAnnotation(t reflect.Type, op ...RewriteOperation) IParameterFilter
	WithNoAnnotations() IParameterFilter
	ClearAnnotations() IParameterFilter
	Annotations() ([]reflect.Type, bool)

	// Returns independent copy of filter.
	Copy() IParameterFilter
}
