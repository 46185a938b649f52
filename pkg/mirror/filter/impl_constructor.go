/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package filter

import (
	"iter"
	"reflect"

	"github.com/voedger/mirror/pkg/mirror"
)

// # Supports:
//   - mirror.IConstructorFilter
//   - fmt.Stringer
type constructorFilter struct {
	params      typesPool
	annotations annotationsCriterion
}

func newConstructorFilter() *constructorFilter {
	return &constructorFilter{}
}

func (f *constructorFilter) WithNoParameters() mirror.IConstructorFilter {
	f.params.none()
	return f
}

func (f *constructorFilter) WithParameters(types []reflect.Type, op ...mirror.RewriteOperation) mirror.IConstructorFilter {
	f.params.rewrite(types, op...)
	return f
}

func (f *constructorFilter) WithParameter(t reflect.Type, op ...mirror.RewriteOperation) mirror.IConstructorFilter {
	f.params.rewrite([]reflect.Type{t}, op...)
	return f
}

func (f *constructorFilter) ClearParameters() mirror.IConstructorFilter {
	f.params.clear()
	return f
}

func (f constructorFilter) Parameters() ([]reflect.Type, bool) { return f.params.get() }

func (f *constructorFilter) WithAnnotations(types []reflect.Type, op ...mirror.RewriteOperation) mirror.IConstructorFilter {
	f.annotations.rewrite(types, op...)
	return f
}

func (f *constructorFilter) WithAnnotation(t reflect.Type, op ...mirror.RewriteOperation) mirror.IConstructorFilter {
	f.annotations.rewrite([]reflect.Type{t}, op...)
	return f
}

func (f *constructorFilter) WithNoAnnotations() mirror.IConstructorFilter {
	f.annotations.none()
	return f
}

func (f *constructorFilter) ClearAnnotations() mirror.IConstructorFilter {
	f.annotations.clear()
	return f
}

func (f constructorFilter) Annotations() ([]reflect.Type, bool) { return f.annotations.get() }

func (f constructorFilter) Copy() mirror.IConstructorFilter {
	return &constructorFilter{
		params:      f.params.copy(),
		annotations: f.annotations.copy(),
	}
}

// Constructor passes parameters criterion if every its parameter type is
// assignable to at least one pool type. Empty pool passes constructors
// without parameters only.
func (f constructorFilter) Match(c mirror.IConstructor) bool {
	if c == nil {
		return false
	}
	if f.params.set {
		if len(f.params.types) == 0 {
			if c.ParameterCount() != 0 {
				return false
			}
		} else if !f.params.covers(parameterTypes(c)) {
			return false
		}
	}
	return f.annotations.match(c)
}

func (f *constructorFilter) Matches(cc iter.Seq[mirror.IConstructor]) iter.Seq[mirror.IConstructor] {
	return allMatches[mirror.IConstructor](f, cc)
}

func (f constructorFilter) String() string {
	// CONSTRUCTORS(PARAMS(…) AND ANNOTATIONS(…))
	var p, a string
	if f.params.set {
		p = "PARAMS(" + f.params.String() + ")"
	}
	if f.annotations.set {
		a = f.annotations.String()
	}
	return render("CONSTRUCTORS", p, a)
}

func parameterTypes(c mirror.IConstructor) iter.Seq[reflect.Type] {
	return func(visit func(reflect.Type) bool) {
		for p := range c.Parameters() {
			if !visit(p.Type()) {
				return
			}
		}
	}
}
