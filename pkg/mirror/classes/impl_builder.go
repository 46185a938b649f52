/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package classes

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/fatih/structtag"

	"github.com/voedger/mirror/pkg/goutils/logger"
	"github.com/voedger/mirror/pkg/mirror"
	"github.com/voedger/mirror/pkg/mirror/internal/decls"
)

// # Supports:
//   - IClassesBuilder
type classesBuilder struct {
	host    mirror.IHost
	classes []*classBuilder
	byType  map[reflect.Type]*classBuilder
	tags    map[string]func(string) any
}

func newClassesBuilder(host mirror.IHost) *classesBuilder {
	return &classesBuilder{
		host:   host,
		byType: make(map[reflect.Type]*classBuilder),
		tags:   make(map[string]func(string) any),
	}
}

func (b *classesBuilder) AddClass(t reflect.Type) IClassBuilder {
	if t == nil {
		panic(mirror.ErrMissed("class type"))
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(mirror.ErrInvalid("class type should be a struct, got %v", t))
	}
	if _, ok := b.byType[t]; ok {
		panic(mirror.ErrAlreadyExists("class «%v»", t))
	}
	cb := newClassBuilder(b, t)
	b.classes = append(b.classes, cb)
	b.byType[t] = cb
	return cb
}

func (b *classesBuilder) BindTag(key string, f func(value string) any) IClassesBuilder {
	b.tags[key] = f
	return b
}

func (b *classesBuilder) Build() (mirror.IClasses, error) {
	cc := decls.NewClasses()
	errs := []error{}
	for _, cb := range b.classes {
		c, err := cb.build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cc.Add(c)
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%v registered: %d constructor(s), %d field(s)", c, c.ConstructorCount(), c.FieldCount()))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cc, nil
}

func (b *classesBuilder) MustBuild() mirror.IClasses {
	cc, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cc
}

// Returns annotations for struct field tags.
func (b *classesBuilder) tagAnnotations(t reflect.Type, sf reflect.StructField) ([]any, error) {
	if sf.Tag == "" {
		return nil, nil
	}
	tags, err := structtag.Parse(string(sf.Tag))
	if err != nil {
		return nil, mirror.ErrInvalid("tag of field «%s» in %v: %v", sf.Name, t, err)
	}
	if tags == nil {
		return nil, nil
	}
	aa := make([]any, 0, tags.Len())
	for _, tag := range tags.Tags() {
		v := tag.Value()
		if f, ok := b.tags[tag.Key]; ok {
			a := f(v)
			if a == nil {
				return nil, mirror.ErrMissed("annotation for tag «%s» of field «%s» in %v", tag.Key, sf.Name, t)
			}
			aa = append(aa, a)
			continue
		}
		aa = append(aa, mirror.StructTag{Key: tag.Key, Value: v})
	}
	return aa, nil
}

type ctorReg struct {
	fn   any
	opts declOptions
}

type staticReg struct {
	name string
	ptr  any
	opts declOptions
}

type fieldReg struct {
	name string
	opts declOptions
}

// # Supports:
//   - IClassBuilder
type classBuilder struct {
	b       *classesBuilder
	typ     reflect.Type
	ctors   []ctorReg
	statics []staticReg
	fields  []fieldReg
}

func newClassBuilder(b *classesBuilder, t reflect.Type) *classBuilder {
	return &classBuilder{b: b, typ: t}
}

func (cb *classBuilder) Type() reflect.Type { return cb.typ }

func (cb *classBuilder) AddConstructor(fn any, opts ...Option) IClassBuilder {
	cb.ctors = append(cb.ctors, ctorReg{fn, makeOptions(opts...)})
	return cb
}

func (cb *classBuilder) AddStaticField(name string, ptr any, opts ...Option) IClassBuilder {
	cb.statics = append(cb.statics, staticReg{name, ptr, makeOptions(opts...)})
	return cb
}

func (cb *classBuilder) Field(name string, opts ...Option) IClassBuilder {
	cb.fields = append(cb.fields, fieldReg{name, makeOptions(opts...)})
	return cb
}

func (cb *classBuilder) build() (*decls.Class, error) {
	c := decls.NewClass(cb.typ)
	errs := []error{}

	decorated := make(map[string]declOptions, len(cb.fields))
	for _, f := range cb.fields {
		// promoted fields are not registered
		if sf, ok := cb.typ.FieldByName(f.name); !ok || len(sf.Index) != 1 {
			errs = append(errs, mirror.ErrFieldNotFound(cb.typ, f.name))
			continue
		}
		if err := validateVisibility(f.opts.vis, "field «%s» in %v", f.name, cb.typ); err != nil {
			errs = append(errs, err)
			continue
		}
		o := decorated[f.name]
		o.annotations = append(o.annotations, f.opts.annotations...)
		if f.opts.vis != mirror.Visibility_null {
			o.vis = f.opts.vis
		}
		decorated[f.name] = o
	}

	for i := range cb.typ.NumField() {
		sf := cb.typ.Field(i)
		aa, err := cb.b.tagAnnotations(cb.typ, sf)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		o := decorated[sf.Name]
		aa = append(aa, o.annotations...)
		if err := validateAnnotations(aa, "field «%s» in %v", sf.Name, cb.typ); err != nil {
			errs = append(errs, err)
			continue
		}
		f := decls.NewField(cb.b.host, cb.typ, sf, visibility(o.vis, sf.Name), aa)
		if err := c.AddField(f); err != nil {
			errs = append(errs, err)
			continue
		}
		logger.Verbose(f, "registered as", f.Visibility().TrimString())
	}

	for _, s := range cb.statics {
		f, err := cb.staticField(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := c.AddField(f); err != nil {
			errs = append(errs, err)
			continue
		}
		logger.Verbose(f, "registered as static", f.Visibility().TrimString())
	}

	for _, r := range cb.ctors {
		ctor, err := cb.constructor(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.AddConstructor(ctor)
		logger.Verbose(ctor, "registered as", ctor.Visibility().TrimString())
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

func (cb *classBuilder) staticField(s staticReg) (*decls.Field, error) {
	if s.name == "" {
		return nil, mirror.ErrMissed("static field name in %v", cb.typ)
	}
	if s.ptr == nil {
		return nil, mirror.ErrMissed("pointer to static field «%s» in %v", s.name, cb.typ)
	}
	v := reflect.ValueOf(s.ptr)
	if v.Kind() != reflect.Pointer {
		return nil, mirror.ErrInvalid("static field «%s» in %v should be a pointer, got %T", s.name, cb.typ, s.ptr)
	}
	if v.IsNil() {
		return nil, mirror.ErrMissed("pointer to static field «%s» in %v", s.name, cb.typ)
	}
	if err := validateAnnotations(s.opts.annotations, "static field «%s» in %v", s.name, cb.typ); err != nil {
		return nil, err
	}
	if err := validateVisibility(s.opts.vis, "static field «%s» in %v", s.name, cb.typ); err != nil {
		return nil, err
	}
	return decls.NewStaticField(cb.b.host, cb.typ, s.name, v, visibility(s.opts.vis, s.name), s.opts.annotations), nil
}

func (cb *classBuilder) constructor(r ctorReg) (*decls.Constructor, error) {
	if err := decls.ValidateConstructor(cb.typ, r.fn); err != nil {
		return nil, err
	}
	fn := reflect.ValueOf(r.fn)

	name := r.opts.name
	if name == "" {
		name = funcName(fn)
	}

	if err := validateAnnotations(r.opts.annotations, "constructor «%s» in %v", name, cb.typ); err != nil {
		return nil, err
	}
	if err := validateVisibility(r.opts.vis, "constructor «%s» in %v", name, cb.typ); err != nil {
		return nil, err
	}

	n := fn.Type().NumIn()
	if len(r.opts.paramNames) > n {
		return nil, mirror.ErrInvalid("constructor «%s» in %v has %d parameters, but %d names given", name, cb.typ, n, len(r.opts.paramNames))
	}
	params := make([]decls.ParamDesc, n)
	for i, pn := range r.opts.paramNames {
		params[i].Name = pn
	}
	for i, aa := range r.opts.paramAnns {
		if i < 0 || i >= n {
			return nil, mirror.ErrInvalid("constructor «%s» in %v has no parameter %d to annotate", name, cb.typ, i)
		}
		if err := validateAnnotations(aa, "parameter %d of constructor «%s» in %v", i, name, cb.typ); err != nil {
			return nil, err
		}
		params[i].Annotations = aa
	}

	return decls.NewConstructor(cb.b.host, cb.typ, fn, name, visibility(r.opts.vis, name), r.opts.annotations, params), nil
}

// Checks that annotations have no nil values.
func validateAnnotations(aa []any, decl string, args ...any) error {
	for i, a := range aa {
		if a == nil {
			return mirror.ErrMissed("annotation %d of %s", i, fmt.Sprintf(decl, args...))
		}
	}
	return nil
}

// Checks that explicit visibility, if any, is a known tier.
func validateVisibility(v mirror.Visibility, decl string, args ...any) error {
	if v >= mirror.Visibility_count {
		return mirror.ErrInvalid("visibility %v of %s", v, fmt.Sprintf(decl, args...))
	}
	return nil
}

// Returns explicit visibility or visibility of identifier name.
func visibility(explicit mirror.Visibility, name string) mirror.Visibility {
	if explicit != mirror.Visibility_null {
		return explicit
	}
	return mirror.VisibilityOf(name)
}

// Returns short function name without package path.
func funcName(fn reflect.Value) string {
	n := runtime.FuncForPC(fn.Pointer()).Name()
	if i := strings.LastIndex(n, "/"); i >= 0 {
		n = n[i+1:]
	}
	if i := strings.Index(n, "."); i >= 0 {
		n = n[i+1:]
	}
	return strings.TrimSuffix(n, "-fm")
}
