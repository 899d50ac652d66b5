// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb/maptile"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
)

// ParseTile parses tile coordinates formatted as z/x/y.
func ParseTile(str string) (maptile.Tile, error) {
	parts := strings.Split(str, "/")
	if len(parts) != 3 {
		return maptile.Tile{}, &rerrors.ErrInvalidParameter{Name: FlagTile, Value: str}
	}
	values := make([]uint32, 0, 3)
	for _, part := range parts {
		i, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return maptile.Tile{}, &rerrors.ErrInvalidParameter{Name: FlagTile, Value: str}
		}
		values = append(values, uint32(i))
	}
	z, x, y := values[0], values[1], values[2]
	if z > 32 || (z < 32 && (x >= 1<<z || y >= 1<<z)) {
		return maptile.Tile{}, &rerrors.ErrInvalidParameter{Name: FlagTile, Value: str}
	}
	return maptile.New(x, y, maptile.Zoom(z)), nil
}
