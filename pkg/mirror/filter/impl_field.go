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
//   - mirror.IFieldFilter
//   - fmt.Stringer
type fieldFilter struct {
	name        nameCriterion
	typ         typeCriterion
	annotations annotationsCriterion
}

func newFieldFilter() *fieldFilter {
	return &fieldFilter{}
}

func (f *fieldFilter) WithName(n string) mirror.IFieldFilter {
	f.name.with(n)
	return f
}

func (f *fieldFilter) ClearName() mirror.IFieldFilter {
	f.name.clear()
	return f
}

func (f fieldFilter) Name() (string, bool) { return f.name.get() }

func (f *fieldFilter) OfType(t reflect.Type) mirror.IFieldFilter {
	f.typ.t = t
	return f
}

func (f *fieldFilter) ClearType() mirror.IFieldFilter {
	f.typ.t = nil
	return f
}

func (f fieldFilter) Type() reflect.Type { return f.typ.t }

func (f *fieldFilter) WithAnnotations(types []reflect.Type, op ...mirror.RewriteOperation) mirror.IFieldFilter {
	f.annotations.rewrite(types, op...)
	return f
}

func (f *fieldFilter) WithAnnotation(t reflect.Type, op ...mirror.RewriteOperation) mirror.IFieldFilter {
	f.annotations.rewrite([]reflect.Type{t}, op...)
	return f
}

func (f *fieldFilter) WithNoAnnotations() mirror.IFieldFilter {
	f.annotations.none()
	return f
}

func (f *fieldFilter) ClearAnnotations() mirror.IFieldFilter {
	f.annotations.clear()
	return f
}

func (f fieldFilter) Annotations() ([]reflect.Type, bool) { return f.annotations.get() }

func (f fieldFilter) Copy() mirror.IFieldFilter {
	return &fieldFilter{
		name:        f.name,
		typ:         f.typ,
		annotations: f.annotations.copy(),
	}
}

func (f fieldFilter) Match(fld mirror.IField) bool {
	if fld == nil {
		return false
	}
	return f.name.match(fld.Name()) &&
		f.typ.match(fld.Type()) &&
		f.annotations.match(fld)
}

func (f *fieldFilter) Matches(ff iter.Seq[mirror.IField]) iter.Seq[mirror.IField] {
	return allMatches[mirror.IField](f, ff)
}

func (f fieldFilter) String() string {
	// FIELDS(NAME(…) AND TYPE(…) AND ANNOTATIONS(…))
	return render("FIELDS", criteriaStrings(f.name, f.typ, f.annotations)...)
}

// Returns strings of set name, type and annotations criteria.
func criteriaStrings(n nameCriterion, t typeCriterion, a annotationsCriterion) []string {
	s := make([]string, 0, 3)
	if n.set {
		s = append(s, n.String())
	}
	if t.t != nil {
		s = append(s, t.String())
	}
	if a.set {
		s = append(s, a.String())
	}
	return s
}
