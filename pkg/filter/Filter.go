// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package filter composes predicates over feature properties.
package filter

// Filter reports whether a property map matches.
type Filter interface {
	Evaluate(properties map[string]interface{}) bool
}
