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
//   - mirror.IParameterFilter
//   - fmt.Stringer
type parameterFilter struct {
	name        nameCriterion
	typ         typeCriterion
	annotations annotationsCriterion
}

func newParameterFilter() *parameterFilter {
	return &parameterFilter{}
}

func (f *parameterFilter) WithName(n string) mirror.IParameterFilter {
	f.name.with(n)
	return f
}

func (f *parameterFilter) ClearName() mirror.IParameterFilter {
	f.name.clear()
	return f
}

func (f parameterFilter) Name() (string, bool) { return f.name.get() }

func (f *parameterFilter) OfType(t reflect.Type) mirror.IParameterFilter {
	f.typ.t = t
	return f
}

func (f *parameterFilter) ClearType() mirror.IParameterFilter {
	f.typ.t = nil
	return f
}

func (f parameterFilter) Type() reflect.Type { return f.typ.t }

func (f *parameterFilter) WithAnnotations(types []reflect.Type, op ...mirror.RewriteOperation) mirror.IParameterFilter {
	f.annotations.rewrite(types, op...)
	return f
}

func (f *parameterFilter) WithAnnotation(t reflect.Type, op ...mirror.RewriteOperation) mirror.IParameterFilter {
	f.annotations.rewrite([]reflect.Type{t}, op...)
	return f
}

func (f *parameterFilter) WithNoAnnotations() mirror.IParameterFilter {
	f.annotations.none()
	return f
}

func (f *parameterFilter) ClearAnnotations() mirror.IParameterFilter {
	f.annotations.clear()
	return f
}

func (f parameterFilter) Annotations() ([]reflect.Type, bool) { return f.annotations.get() }

func (f parameterFilter) Copy() mirror.IParameterFilter {
	return &parameterFilter{
		name:        f.name,
		typ:         f.typ,
		annotations: f.annotations.copy(),
	}
}

func (f parameterFilter) Match(p mirror.IParameter) bool {
	if p == nil {
		return false
	}
	return f.name.match(p.Name()) &&
		f.typ.match(p.Type()) &&
		f.annotations.match(p)
}

func (f *parameterFilter) Matches(pp iter.Seq[mirror.IParameter]) iter.Seq[mirror.IParameter] {
	return allMatches[mirror.IParameter](f, pp)
}

func (f parameterFilter) String() string {
	// PARAMETERS(NAME(…) AND TYPE(…) AND ANNOTATIONS(…))
	return render("PARAMETERS", criteriaStrings(f.name, f.typ, f.annotations)...)
}
