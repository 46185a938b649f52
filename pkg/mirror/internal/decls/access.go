/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package decls

import (
	"sync/atomic"

	"github.com/voedger/mirror/pkg/mirror"
)

// Accessibility state of a declaration.
//
// Descriptive fields are immutable, elevated flag is changed by elevate() only
// and never goes back, so gate is safe for concurrent use.
type gate struct {
	decl     mirror.IDeclaration
	host     mirror.IHost
	vis      mirror.Visibility
	static   bool
	elevated atomic.Bool
}

func newGate(host mirror.IHost, vis mirror.Visibility, static bool) *gate {
	return &gate{host: host, vis: vis, static: static}
}

func (g *gate) accessible(instance any) bool {
	if !mirror.IsValidContext(g.decl, instance) {
		return false
	}
	return (g.vis == mirror.Visibility_Public) || g.elevated.Load()
}

func (g *gate) elevate(instance any) {
	if g.accessible(instance) {
		return
	}
	if g.host == nil {
		return
	}
	if g.host.CanElevate(g.decl, instance) {
		g.elevated.Store(true)
	}
}

// # Supports:
//   - mirror.IAccessible[T]
type Accessible[T any] struct {
	self T
	decl mirror.IDeclaration
	gate *gate
}

func makeAccessible[T any](self T, decl mirror.IDeclaration, g *gate) Accessible[T] {
	return Accessible[T]{self: self, decl: decl, gate: g}
}

func (a Accessible[T]) Visibility() mirror.Visibility { return a.gate.vis }

func (a Accessible[T]) IsPublic() bool { return a.gate.vis == mirror.Visibility_Public }

func (a Accessible[T]) IsProtected() bool { return a.gate.vis == mirror.Visibility_Protected }

func (a Accessible[T]) IsPackagePrivate() bool { return a.gate.vis == mirror.Visibility_PackagePrivate }

func (a Accessible[T]) IsPrivate() bool { return a.gate.vis == mirror.Visibility_Private }

func (a Accessible[T]) IsStatic() bool { return a.gate.static }

func (a Accessible[T]) IsAccessible(instance any) bool { return a.gate.accessible(instance) }

func (a Accessible[T]) MakeAccessible(instance any) T {
	a.gate.elevate(instance)
	return a.self
}

func (a Accessible[T]) RequireAccessible(instance any) (T, error) {
	a.gate.elevate(instance)
	if !a.IsAccessible(instance) {
		var zero T
		return zero, mirror.ErrInaccessible(a.decl)
	}
	return a.self, nil
}

func (a Accessible[T]) IfAccessible(action func(T)) T {
	if a.IsAccessible(nil) {
		action(a.self)
	}
	return a.self
}

func (a Accessible[T]) IfNotAccessible(action func(T)) T {
	if !a.IsAccessible(nil) {
		action(a.self)
	}
	return a.self
}
