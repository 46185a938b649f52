/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mirror

import "strings"

// Describes how a new batch of criteria values merges into the existing criteria list.
type RewriteOperation uint8

//go:generate stringer -type=RewriteOperation -output=stringer_rewriteoperation.go

const (
	// New values are added after the existing ones.
	RewriteOperation_Append RewriteOperation = iota

	// Existing values are discarded, new values are installed verbatim.
	RewriteOperation_Replace

	RewriteOperation_count
)

// Renders a RewriteOperation without `RewriteOperation_` prefix.
func (op RewriteOperation) TrimString() string {
	const pref = "RewriteOperation_"
	return strings.TrimPrefix(op.String(), pref)
}

// Returns the first specified operation or RewriteOperation_Append if none specified.
func DefaultRewrite(op ...RewriteOperation) RewriteOperation {
	if len(op) > 0 {
		return op[0]
	}
	return RewriteOperation_Append
}

// Applies operation to the list in place.
//
// Append keeps existing values and adds new ones after them, duplicates are kept.
// Replace clears the list and installs new values.
func Rewrite[T any](list *[]T, op RewriteOperation, values ...T) {
	switch op {
	case RewriteOperation_Replace:
		*list = append((*list)[:0:0], values...)
	default:
		*list = append(*list, values...)
	}
}
