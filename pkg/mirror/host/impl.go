/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package host

import (
	"fmt"

	"github.com/voedger/mirror/pkg/goutils/logger"
	"github.com/voedger/mirror/pkg/mirror"
)

// # Supports:
//   - mirror.IHost
type host struct {
	policy Policy
}

func newHost(p Policy) *host {
	return &host{policy: p}
}

func (h host) CanElevate(d mirror.IDeclaration, instance any) bool {
	if d == nil {
		return false
	}
	if !mirror.IsValidContext(d, instance) {
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%v: %T is not valid context, elevation denied", d, instance))
		}
		return false
	}
	ok := h.policy.Allows(d.Visibility())
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%v: %s elevation %s", d, d.Visibility().TrimString(), granted(ok)))
	}
	return ok
}

func (h host) String() string {
	return fmt.Sprintf("host(%v)", h.policy)
}

func granted(ok bool) string {
	if ok {
		return "granted"
	}
	return "denied"
}
