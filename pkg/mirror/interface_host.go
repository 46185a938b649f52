/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

// IHost is the access-control primitive of the host runtime.
type IHost interface {
	// Attempts to relax access restriction of declaration for instance context.
	//
	// Returns true if declaration may be used after this call.
	CanElevate(d IDeclaration, instance any) bool
}
