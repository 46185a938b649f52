/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package host

import (
	"fmt"

	"github.com/voedger/mirror/pkg/mirror"
)

// Policy declares which visibility tiers may be elevated by host.
//
// Public declarations need no elevation.
type Policy struct {
	Protected      bool `yaml:"protected"`
	PackagePrivate bool `yaml:"packagePrivate"`
	Private        bool `yaml:"private"`
}

// Returns default policy: protected and package-private declarations may be elevated, private may not.
func DefaultPolicy() Policy {
	return Policy{
		Protected:      true,
		PackagePrivate: true,
	}
}

// Returns is declarations with specified visibility accessible by policy.
func (p Policy) Allows(v mirror.Visibility) bool {
	switch v {
	case mirror.Visibility_Public:
		return true
	case mirror.Visibility_Protected:
		return p.Protected
	case mirror.Visibility_PackagePrivate:
		return p.PackagePrivate
	case mirror.Visibility_Private:
		return p.Private
	}
	return false
}

func (p Policy) String() string {
	return fmt.Sprintf("protected: %v, packagePrivate: %v, private: %v", p.Protected, p.PackagePrivate, p.Private)
}
