/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package classes

import (
	"github.com/voedger/mirror/pkg/mirror"
	"github.com/voedger/mirror/pkg/mirror/host"
)

// Returns new classes builder.
//
// Host decides which declarations may be elevated. If host is nil, then host.Default() is used.
func New(h mirror.IHost) IClassesBuilder {
	if h == nil {
		h = host.Default()
	}
	return newClassesBuilder(h)
}

// Adds class for T to builder.
func Add[T any](b IClassesBuilder) IClassBuilder {
	return b.AddClass(mirror.TypeOf[T]())
}
