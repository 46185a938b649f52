/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import (
	"strconv"
	"strings"
)

// Kind of reflective declaration.
type DeclKind uint8

//go:generate stringer -type=DeclKind -output=stringer_declkind.go

const (
	DeclKind_null DeclKind = iota

	DeclKind_Constructor
	DeclKind_Field
	DeclKind_Parameter

	DeclKind_count
)

func (k DeclKind) MarshalText() ([]byte, error) {
	var s string
	if k < DeclKind_count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a DeclKind in human-readable form, without `DeclKind_` prefix,
// suitable for debugging or error messages
func (k DeclKind) TrimString() string {
	const pref = "DeclKind_"
	return strings.TrimPrefix(k.String(), pref)
}
