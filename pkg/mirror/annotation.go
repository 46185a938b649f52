/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"fmt"
	"reflect"
)

// StructTag is an annotation produced from struct field tag key without bound annotation factory.
type StructTag struct {
	Key   string
	Value string
}

func (t StructTag) String() string {
	return fmt.Sprintf("%s:%q", t.Key, t.Value)
}

// Returns reflect.Type of T.
//
// Shortcut to use in filter criteria, e.g.
//
//	filter.ForFields().OfType(mirror.TypeOf[io.Reader]())
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
