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

// ErrInvalidSource is returned when a reader is given a source that is not a byte slice.
type ErrInvalidSource struct {
	Value interface{}
}

func (e *ErrInvalidSource) Error() string {
	return fmt.Sprintf("invalid source of type %T, expecting []byte", e.Value)
}
