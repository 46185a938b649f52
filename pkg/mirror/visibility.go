/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"strconv"
	"strings"
)

// Declared access level of a declaration.
type Visibility uint8

//go:generate stringer -type=Visibility -output=stringer_visibility.go

const (
	Visibility_null Visibility = iota

	// Exported declaration, usable from everywhere.
	Visibility_Public

	// Declaration restricted to the owner and its extensions.
	//
	// Go has no such tier, it is assigned explicitly at registration.
	Visibility_Protected

	// Unexported declaration, usable inside the declaring package only.
	Visibility_PackagePrivate

	// Declaration restricted to the owner itself.
	//
	// Go has no such tier, it is assigned explicitly at registration.
	Visibility_Private

	Visibility_count
)

// Returns visibility for Go identifier: exported names are public, others are package-private.
func VisibilityOf(name string) Visibility {
	if isExported(name) {
		return Visibility_Public
	}
	return Visibility_PackagePrivate
}

func (v Visibility) MarshalText() ([]byte, error) {
	var s string
	if v < Visibility_count {
		s = v.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(v), base)
	}
	return []byte(s), nil
}

// Renders a Visibility in human-readable form, without `Visibility_` prefix,
// suitable for debugging or error messages
func (v Visibility) TrimString() string {
	const pref = "Visibility_"
	return strings.TrimPrefix(v.String(), pref)
}
