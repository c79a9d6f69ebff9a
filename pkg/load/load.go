// Package load reads Pretenst structure descriptions from disk and
// normalizes the two source encodings (a JSON document, or a pair of
// semicolon-delimited CSV tables) into one fabric.Fabric schema.
//
// All failures are fatal for the load call: a FormatError, IOError or
// ReferenceError aborts the whole load and no partial fabric is ever
// returned.
package load

import (
	"path/filepath"
	"strings"

	"github.com/pretenst/fabric/pkg/fabric"
)

// Load reads a fabric from the given path, picking the decoder from its
// shape: a .json file loads as a JSON document, a .csv file or a
// directory loads as a joints.csv/intervals.csv table pair (for a .csv
// path, the containing directory is used).
func Load(path string) (*fabric.Fabric, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(filepath.Dir(path))
	default:
		return LoadCSV(path)
	}
}

// baseName derives a fabric display name from a file or directory path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
