/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package decls

import (
	"iter"
	"reflect"
	"slices"
)

// # Supports:
//   - mirror.IWithAnnotations
type WithAnnotations struct {
	list []any
}

func makeWithAnnotations(a ...any) WithAnnotations {
	return WithAnnotations{list: slices.Clone(a)}
}

func (a WithAnnotations) Annotations() iter.Seq[any] {
	return slices.Values(a.list)
}

func (a WithAnnotations) AnnotationCount() int { return len(a.list) }

func (a WithAnnotations) HasAnnotation(t reflect.Type) bool {
	return a.Annotation(t) != nil
}

func (a WithAnnotations) Annotation(t reflect.Type) any {
	if t == nil {
		return nil
	}
	for _, v := range a.list {
		if reflect.TypeOf(v).AssignableTo(t) {
			return v
		}
	}
	return nil
}
