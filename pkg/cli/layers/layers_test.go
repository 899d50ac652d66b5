// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/go-mvt/pkg/vt"
	"github.com/spatialcurrent/go-mvt/pkg/vt/vttest"
)

func TestLayers(t *testing.T) {
	b := vttest.Encode(
		vttest.Layer{
			Name:   "roads",
			Extent: 512,
			Features: []vttest.Feature{
				{Type: vt.GeometryTypeLineString, Rings: [][]vt.Point{{{X: 0, Y: 0}, {X: 1, Y: 1}}}},
				{Type: vt.GeometryTypeLineString, Rings: [][]vt.Point{{{X: 2, Y: 2}, {X: 3, Y: 3}}}},
			},
		},
		vttest.Layer{Name: "water"},
	)

	cmd := NewCommand()
	out := new(bytes.Buffer)
	cmd.SetIn(bytes.NewReader(b))
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"NAME", "VERSION", "EXTENT", "FEATURES"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"roads", "2", "512", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"water", "2", "4096", "0"}, strings.Fields(lines[2]))
}
