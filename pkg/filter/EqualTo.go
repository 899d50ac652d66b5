// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package filter

import (
	"fmt"
	"reflect"
)

// EqualTo matches when the property Key equals Value.  A string Value also
// matches a property whose printed form is that string, so "3" matches int64(3).
type EqualTo struct {
	Key   string
	Value interface{}
}

func (e *EqualTo) Evaluate(properties map[string]interface{}) bool {
	v, ok := properties[e.Key]
	if !ok {
		return false
	}
	if reflect.DeepEqual(v, e.Value) {
		return true
	}
	if s, ok := e.Value.(string); ok {
		return fmt.Sprint(v) == s
	}
	return false
}
