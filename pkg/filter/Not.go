// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package filter

type Not struct {
	Condition Filter
}

func (n *Not) Evaluate(properties map[string]interface{}) bool {
	return !n.Condition.Evaluate(properties)
}
