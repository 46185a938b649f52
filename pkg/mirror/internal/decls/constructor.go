/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package decls

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/voedger/mirror/pkg/mirror"
)

var errorType = reflect.TypeFor[error]()

// Constructor parameter description used to create constructor.
type ParamDesc struct {
	Name        string
	Annotations []any
}

// # Supports:
//   - mirror.IConstructor
//   - mirror.IAccessible[mirror.IConstructor]
type Constructor struct {
	Accessible[mirror.IConstructor]
	Declaration
	fn     reflect.Value
	params []*Parameter
	hasErr bool
}

// Creates new constructor.
//
// Function should be validated by ValidateConstructor before.
func NewConstructor(host mirror.IHost, owner reflect.Type, fn reflect.Value, name string, vis mirror.Visibility, annotations []any, params []ParamDesc) *Constructor {
	ft := fn.Type()
	c := &Constructor{
		Declaration: makeDeclaration(mirror.DeclKind_Constructor, owner, name, annotations...),
		fn:          fn,
		hasErr:      ft.NumOut() == 2,
	}
	g := newGate(host, vis, false)
	g.decl = c
	c.Accessible = makeAccessible[mirror.IConstructor](c, c, g)

	c.params = make([]*Parameter, ft.NumIn())
	for i := range ft.NumIn() {
		var d ParamDesc
		if i < len(params) {
			d = params[i]
		}
		c.params[i] = newParameter(c, i, ft.In(i), d)
	}
	return c
}

// Checks that fn is a function which returns owner or pointer to owner and optional error.
func ValidateConstructor(owner reflect.Type, fn any) error {
	if fn == nil {
		return mirror.ErrMissed("constructor function for %v", owner)
	}
	ft := reflect.TypeOf(fn)
	if ft.Kind() != reflect.Func {
		return mirror.ErrInvalid("constructor for %v should be a function, got %v", owner, ft)
	}
	if reflect.ValueOf(fn).IsNil() {
		return mirror.ErrMissed("constructor function for %v", owner)
	}
	if ft.NumOut() < 1 || ft.NumOut() > 2 {
		return mirror.ErrInvalid("constructor %v for %v should return (%v) or (%v, error)", ft, owner, owner, owner)
	}
	if res := ft.Out(0); (res != owner) && (res != reflect.PointerTo(owner)) {
		return mirror.ErrInvalid("constructor %v should return %v or *%v", ft, owner, owner)
	}
	if ft.NumOut() == 2 {
		if e := ft.Out(1); !e.Implements(errorType) {
			return mirror.ErrInvalid("second result of constructor %v should be error", ft)
		} else if !nillable(e) {
			return mirror.ErrInvalid("second result of constructor %v is never nil", ft)
		}
	}
	return nil
}

func (c *Constructor) Parameters() iter.Seq[mirror.IParameter] {
	return func(visit func(mirror.IParameter) bool) {
		for _, p := range c.params {
			if !visit(p) {
				return
			}
		}
	}
}

func (c *Constructor) ParameterCount() int { return len(c.params) }

func (c *Constructor) Parameter(i int) mirror.IParameter { return c.params[i] }

func (c *Constructor) ParameterTypes() []reflect.Type {
	tt := make([]reflect.Type, len(c.params))
	for i, p := range c.params {
		tt[i] = p.typ
	}
	return tt
}

func (c *Constructor) IsVariadic() bool { return c.fn.Type().IsVariadic() }

func (c *Constructor) Func() reflect.Value { return c.fn }

func (c *Constructor) Invoke(args ...any) (any, error) {
	if !c.IsAccessible(nil) {
		return nil, mirror.ErrInaccessible(c)
	}

	in, err := c.arguments(args)
	if err != nil {
		return nil, err
	}

	out := c.fn.Call(in)
	if c.hasErr {
		if e := out[1]; !nillable(e.Type()) || !e.IsNil() {
			return nil, e.Interface().(error)
		}
	}
	return out[0].Interface(), nil
}

// Converts arguments to values suitable for fn.Call.
func (c *Constructor) arguments(args []any) ([]reflect.Value, error) {
	ft := c.fn.Type()
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, mirror.ErrInvalid("%v expects at least %d arguments, got %d", c, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, mirror.ErrInvalid("%v expects %d arguments, got %d", c, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		t := c.argType(i)
		v, ok := valueOf(t, a, false)
		if !ok {
			return nil, mirror.ErrInvalid("argument %d of %v: %T is not assignable to %v", i, c, a, t)
		}
		in[i] = v
	}
	return in, nil
}

func (c *Constructor) argType(i int) reflect.Type {
	ft := c.fn.Type()
	if last := ft.NumIn() - 1; ft.IsVariadic() && i >= last {
		return ft.In(last).Elem()
	}
	return ft.In(i)
}

func (c *Constructor) String() string {
	s := strings.Builder{}
	for i, p := range c.params {
		if i > 0 {
			s.WriteString(", ")
		}
		if c.IsVariadic() && i == len(c.params)-1 {
			s.WriteString("..." + p.typ.Elem().String())
		} else {
			s.WriteString(p.typ.String())
		}
	}
	return fmt.Sprintf("%s «%s(%s)»", c.Kind().TrimString(), c.Name(), s.String())
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// Returns value of type t for a.
//
// Nil a gives zero value for nillable types or, if zeroAny, for any type.
func valueOf(t reflect.Type, a any, zeroAny bool) (reflect.Value, bool) {
	if a == nil {
		if nillable(t) || zeroAny {
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return v, true
}
