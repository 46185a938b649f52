/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"iter"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Returns first element from sequence accepted by match.
//
// Returns error wrapped ErrNotFoundError if no elements accepted.
func First[T any](seq iter.Seq[T], match func(T) bool) (T, error) {
	for v := range seq {
		if match(v) {
			return v, nil
		}
	}
	var zero T
	return zero, ErrNotFound("no matches in sequence of %v", reflect.TypeFor[T]())
}

// Returns is instance a valid owning context for declaration.
//
// Nil instance is always valid.
// Static fields, constructors and parameters accept nil instance only.
// Instance fields accept a value or a non-nil pointer to the owner.
func IsValidContext(d IDeclaration, instance any) bool {
	if instance == nil {
		return true
	}
	if d.IsStatic() || d.Kind() != DeclKind_Field {
		return false
	}
	t := reflect.TypeOf(instance)
	switch {
	case t == d.Owner():
		return true
	case t.Kind() == reflect.Pointer && t.Elem() == d.Owner():
		return !reflect.ValueOf(instance).IsNil()
	}
	return false
}

// Returns is reflect type v assignable to at least one of types.
//
// Nil types are assignable to nothing.
func AssignableToAny(v reflect.Type, types []reflect.Type) bool {
	if v == nil {
		return false
	}
	for _, t := range types {
		if t != nil && v.AssignableTo(t) {
			return true
		}
	}
	return false
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
