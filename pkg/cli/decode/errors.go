// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"github.com/pkg/errors"
)

var (
	ErrMissingTile         = errors.New("reprojection requires the tile coordinates")
	ErrFlyweightProjection = errors.New("flyweight features cannot be reprojected")
)
