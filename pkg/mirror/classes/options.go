/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package classes

import (
	"github.com/voedger/mirror/pkg/mirror"
)

// Option configures registered declaration.
type Option func(*declOptions)

type declOptions struct {
	annotations []any
	vis         mirror.Visibility
	name        string
	paramNames  []string
	paramAnns   map[int][]any
}

func makeOptions(opts ...Option) declOptions {
	o := declOptions{paramAnns: make(map[int][]any)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Attaches annotations to declaration.
func Annotate(values ...any) Option {
	return func(o *declOptions) {
		o.annotations = append(o.annotations, values...)
	}
}

// Sets declaration visibility.
//
// Protected and Private tiers can be assigned only by this option.
func WithVisibility(v mirror.Visibility) Option {
	return func(o *declOptions) {
		o.vis = v
	}
}

// Sets constructor name.
func Named(name string) Option {
	return func(o *declOptions) {
		o.name = name
	}
}

// Sets constructor parameter names in declaration order.
func ParamNames(names ...string) Option {
	return func(o *declOptions) {
		o.paramNames = append(o.paramNames[:0:0], names...)
	}
}

// Attaches annotations to constructor parameter with specified index.
func AnnotateParam(i int, values ...any) Option {
	return func(o *declOptions) {
		o.paramAnns[i] = append(o.paramAnns[i], values...)
	}
}
