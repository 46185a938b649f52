/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

// IWithVisibility is an interface for declarations with visibility.
type IWithVisibility interface {
	// Returns declared visibility.
	//
	// Exactly one of IsPublic(), IsProtected(), IsPackagePrivate() or IsPrivate() is true.
	Visibility() Visibility

	IsPublic() bool
	IsProtected() bool
	IsPackagePrivate() bool
	IsPrivate() bool

	// Returns is declaration static, i.e. is not bound to the owner instance.
	IsStatic() bool

	// Returns is declaration can be used now.
	//
	// If instance is nil, checks unbound accessibility.
	// Otherwise also checks that instance is a valid owning context for declaration:
	// a value or a pointer to the owner for instance fields, nothing for static
	// fields and constructors.
	IsAccessible(instance any) bool
}

// IAccessible is a capability to query and elevate accessibility of a wrapped declaration.
//
// T is the concrete wrapper interface, it is returned from chained calls.
type IAccessible[T any] interface {
	IWithVisibility

	// Attempts to elevate accessibility to the maximum the host permits.
	//
	// Idempotent, never downgrades and never fails: elevation failure is observed
	// by IsAccessible or by RequireAccessible only.
	MakeAccessible(instance any) T

	// Calls MakeAccessible, then checks IsAccessible.
	//
	// Returns *InaccessibleError if declaration is still inaccessible.
	RequireAccessible(instance any) (T, error)

	// Calls action once if declaration is accessible. Does not elevate.
	IfAccessible(action func(T)) T

	// Calls action once if declaration is not accessible. Does not elevate.
	IfNotAccessible(action func(T)) T
}
