// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// mvt is the command line program for reading Mapbox vector tiles.
//
// Usage:
//
//	mvt decode --input-uri 14_8185_5448.pbf --layers roads,water --pretty
//	mvt decode --input-uri 14_8185_5448.pbf --tile 14/8185/5448 --projection EPSG:4326
//	mvt layers --input-uri 14_8185_5448.pbf
package main

import (
	"fmt"
	"os"

	"github.com/spatialcurrent/go-mvt/pkg/cli"
)

var gitBranch string
var gitCommit string

func main() {
	err := cli.Execute(gitBranch, gitCommit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
