/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package filter

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/voedger/mirror/pkg/goutils/logger"
	"github.com/voedger/mirror/pkg/mirror"
)

// Optional list of types.
//
// Unset pool passes everything. Set pool may be empty.
// Nil types are never pooled.
type typesPool struct {
	types []reflect.Type
	set   bool
}

func (p *typesPool) rewrite(types []reflect.Type, op ...mirror.RewriteOperation) {
	types = slices.DeleteFunc(slices.Clone(types), func(t reflect.Type) bool { return t == nil })
	mirror.Rewrite(&p.types, mirror.DefaultRewrite(op...), types...)
	p.set = true
}

func (p *typesPool) none() {
	p.types = nil
	p.set = true
}

func (p *typesPool) clear() {
	p.types = nil
	p.set = false
}

func (p typesPool) get() ([]reflect.Type, bool) {
	return slices.Clone(p.types), p.set
}

func (p typesPool) copy() typesPool {
	return typesPool{types: slices.Clone(p.types), set: p.set}
}

// Returns is every type from seq assignable to some pool type.
func (p typesPool) covers(seq iter.Seq[reflect.Type]) bool {
	for t := range seq {
		if !mirror.AssignableToAny(t, p.types) {
			return false
		}
	}
	return true
}

func (p typesPool) String() string {
	s := make([]string, len(p.types))
	for i, t := range p.types {
		s[i] = fmt.Sprint(t)
	}
	return strings.Join(s, ", ")
}

// Annotations criterion.
type annotationsCriterion struct {
	typesPool
}

// Returns is declaration annotations passed criterion.
//
// # Rules:
//   - unset criterion passes any declaration,
//   - empty criterion passes declarations without annotations,
//   - otherwise declaration should have at least one annotation and every annotation
//     should be assignable to at least one of required types.
func (c annotationsCriterion) match(d mirror.IWithAnnotations) bool {
	if !c.set {
		return true
	}
	if len(c.types) == 0 {
		return d.AnnotationCount() == 0
	}
	if d.AnnotationCount() == 0 {
		return false
	}
	return c.covers(func(visit func(reflect.Type) bool) {
		for a := range d.Annotations() {
			if !visit(reflect.TypeOf(a)) {
				return
			}
		}
	})
}

func (c annotationsCriterion) copy() annotationsCriterion {
	return annotationsCriterion{c.typesPool.copy()}
}

func (c annotationsCriterion) String() string {
	return "ANNOTATIONS(" + c.typesPool.String() + ")"
}

// Name criterion.
type nameCriterion struct {
	name string
	set  bool
}

func (c *nameCriterion) with(n string) {
	c.name = n
	c.set = true
}

func (c *nameCriterion) clear() {
	c.name = ""
	c.set = false
}

func (c nameCriterion) get() (string, bool) { return c.name, c.set }

// Empty required name never matches.
func (c nameCriterion) match(n string) bool {
	if !c.set {
		return true
	}
	return (c.name != "") && (c.name == n)
}

func (c nameCriterion) String() string { return fmt.Sprintf("NAME(%q)", c.name) }

// Type criterion, nil type is unset.
type typeCriterion struct {
	t reflect.Type
}

func (c typeCriterion) match(t reflect.Type) bool {
	if c.t == nil {
		return true
	}
	return (t != nil) && t.AssignableTo(c.t)
}

func (c typeCriterion) String() string { return fmt.Sprintf("TYPE(%v)", c.t) }

// Renders filter as KIND(c1 AND c2 …) or KIND(*) if no criteria.
//
// Empty criteria are skipped.
func render(kind string, criteria ...string) string {
	s := slices.DeleteFunc(criteria, func(c string) bool { return c == "" })
	if len(s) == 0 {
		return kind + "(*)"
	}
	return kind + "(" + strings.Join(s, " AND ") + ")"
}

// Returns declarations matched by filter.
func allMatches[T any](f mirror.IFilter[T], decls iter.Seq[T]) iter.Seq[T] {
	return func(visit func(T) bool) {
		cnt := 0
		defer func() {
			if logger.IsTrace() {
				logger.Trace(fmt.Sprintf("%v: %d matched", f, cnt))
			}
		}()
		for d := range decls {
			if f.Match(d) {
				cnt++
				if !visit(d) {
					return
				}
			}
		}
	}
}
