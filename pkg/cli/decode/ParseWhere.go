// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"strings"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
	"github.com/spatialcurrent/go-mvt/pkg/filter"
)

// ParseWhere parses key=value clauses into an equality filter, combining
// several clauses with And.  No clauses returns nil.
func ParseWhere(clauses []string) (filter.Filter, error) {
	conditions := make([]filter.Filter, 0, len(clauses))
	for _, clause := range clauses {
		i := strings.Index(clause, "=")
		if i <= 0 {
			return nil, &rerrors.ErrInvalidParameter{Name: FlagWhere, Value: clause}
		}
		conditions = append(conditions, &filter.EqualTo{Key: clause[:i], Value: clause[i+1:]})
	}
	switch len(conditions) {
	case 0:
		return nil, nil
	case 1:
		return conditions[0], nil
	}
	and, err := filter.NewAnd(conditions...)
	if err != nil {
		return nil, err
	}
	return and, nil
}
