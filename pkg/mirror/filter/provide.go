/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package filter

import "github.com/voedger/mirror/pkg/mirror"

// Returns new constructor filter without criteria.
//
// Filter without criteria matches any constructor.
func ForConstructors() mirror.IConstructorFilter { return newConstructorFilter() }

// Returns new field filter without criteria.
//
// Filter without criteria matches any field.
func ForFields() mirror.IFieldFilter { return newFieldFilter() }

// Returns new parameter filter without criteria.
//
// Filter without criteria matches any parameter.
func ForParameters() mirror.IParameterFilter { return newParameterFilter() }
