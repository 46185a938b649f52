/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package decls

import (
	"reflect"

	"github.com/voedger/mirror/pkg/mirror"
)

// Common descriptive part of declarations.
type Declaration struct {
	WithAnnotations
	kind  mirror.DeclKind
	owner reflect.Type
	name  string
}

func makeDeclaration(kind mirror.DeclKind, owner reflect.Type, name string, annotations ...any) Declaration {
	return Declaration{
		WithAnnotations: makeWithAnnotations(annotations...),
		kind:            kind,
		owner:           owner,
		name:            name,
	}
}

func (d Declaration) Kind() mirror.DeclKind { return d.kind }

func (d Declaration) Owner() reflect.Type { return d.owner }

func (d Declaration) Name() string { return d.name }
