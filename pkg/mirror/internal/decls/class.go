/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package decls

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/voedger/mirror/pkg/mirror"
)

// # Supports:
//   - mirror.IClass
type Class struct {
	typ          reflect.Type
	constructors []*Constructor
	fields       []*Field
	fieldsByName map[string]*Field
}

func NewClass(t reflect.Type) *Class {
	return &Class{
		typ:          t,
		fieldsByName: make(map[string]*Field),
	}
}

func (c *Class) AddConstructor(ctor *Constructor) {
	c.constructors = append(c.constructors, ctor)
}

// Adds field to class.
//
// Returns error if field with the same name already exists.
func (c *Class) AddField(f *Field) error {
	if _, ok := c.fieldsByName[f.Name()]; ok {
		return mirror.ErrAlreadyExists("field «%s» in %v", f.Name(), c.typ)
	}
	c.fields = append(c.fields, f)
	c.fieldsByName[f.Name()] = f
	return nil
}

func (c *Class) Type() reflect.Type { return c.typ }

func (c *Class) Constructors() iter.Seq[mirror.IConstructor] {
	return func(visit func(mirror.IConstructor) bool) {
		for _, ctor := range c.constructors {
			if !visit(ctor) {
				return
			}
		}
	}
}

func (c *Class) ConstructorCount() int { return len(c.constructors) }

func (c *Class) Fields() iter.Seq[mirror.IField] {
	return func(visit func(mirror.IField) bool) {
		for _, f := range c.fields {
			if !visit(f) {
				return
			}
		}
	}
}

func (c *Class) FieldCount() int { return len(c.fields) }

func (c *Class) Field(name string) mirror.IField {
	if f, ok := c.fieldsByName[name]; ok {
		return f
	}
	return nil
}

func (c *Class) String() string {
	return fmt.Sprintf("Class «%v»", c.typ)
}

// # Supports:
//   - mirror.IClasses
type Classes struct {
	byType map[reflect.Type]*Class
	sorted []*Class
}

func NewClasses() *Classes {
	return &Classes{byType: make(map[reflect.Type]*Class)}
}

// Adds class. Classes are kept sorted by type string.
func (cc *Classes) Add(c *Class) {
	cc.byType[c.typ] = c
	i, _ := slices.BinarySearchFunc(cc.sorted, c, func(a, b *Class) int {
		return strings.Compare(a.typ.String(), b.typ.String())
	})
	cc.sorted = slices.Insert(cc.sorted, i, c)
}

func (cc *Classes) Class(t reflect.Type) mirror.IClass {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if c, ok := cc.byType[t]; ok {
		return c
	}
	return nil
}

func (cc *Classes) Classes() iter.Seq[mirror.IClass] {
	return func(visit func(mirror.IClass) bool) {
		for _, c := range cc.sorted {
			if !visit(c) {
				return
			}
		}
	}
}

func (cc *Classes) ClassCount() int { return len(cc.sorted) }

var (
	_ mirror.IClass   = (*Class)(nil)
	_ mirror.IClasses = (*Classes)(nil)

	_ mirror.IConstructor                     = (*Constructor)(nil)
	_ mirror.IAccessible[mirror.IConstructor] = (*Constructor)(nil)
	_ mirror.IField                           = (*Field)(nil)
	_ mirror.IAccessible[mirror.IField]       = (*Field)(nil)
	_ mirror.IParameter                       = (*Parameter)(nil)
	_ mirror.IAccessible[mirror.IParameter]   = (*Parameter)(nil)
)
