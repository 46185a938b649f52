/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package host

import "github.com/voedger/mirror/pkg/mirror"

// Returns new host runtime with specified elevation policy.
func New(p Policy) mirror.IHost { return newHost(p) }

// Returns host runtime with DefaultPolicy().
func Default() mirror.IHost { return New(DefaultPolicy()) }
