// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"fmt"
)

type ErrUnknownGeometryKind struct {
	Value interface{}
}

func (e *ErrUnknownGeometryKind) Error() string {
	return fmt.Sprintf("unknown geometry kind %v", e.Value)
}
