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

type Or struct {
	Conditions []Filter
}

// NewOr returns a filter matching when any condition matches.  At least two conditions are required.
func NewOr(conditions ...Filter) (*Or, error) {
	if len(conditions) < 2 {
		return nil, &rerrors.ErrInvalidParameter{Name: "conditions", Value: len(conditions)}
	}
	return &Or{Conditions: conditions}, nil
}

func (o *Or) Evaluate(properties map[string]interface{}) bool {
	for _, c := range o.Conditions {
		if c.Evaluate(properties) {
			return true
		}
	}
	return false
}
