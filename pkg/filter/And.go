// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package filter

import (
	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
)

type And struct {
	Conditions []Filter
}

// NewAnd returns a filter matching when every condition matches.  At least two conditions are required.
func NewAnd(conditions ...Filter) (*And, error) {
	if len(conditions) < 2 {
		return nil, &rerrors.ErrInvalidParameter{Name: "conditions", Value: len(conditions)}
	}
	return &And{Conditions: conditions}, nil
}

func (a *And) Evaluate(properties map[string]interface{}) bool {
	for _, c := range a.Conditions {
		if !c.Evaluate(properties) {
			return false
		}
	}
	return true
}
