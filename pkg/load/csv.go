package load

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pretenst/fabric/pkg/fabric"
	mat32 "goki.dev/mat32/v2"
)

// File names a CSV export always uses.
const (
	jointsFile    = "joints.csv"
	intervalsFile = "intervals.csv"
)

// LoadCSV reads a fabric from a directory holding a joints.csv and an
// intervals.csv table. The tables are semicolon-delimited with a header
// row; numeric cells use comma as the decimal separator.
func LoadCSV(dir string) (*fabric.Fabric, error) {
	jointsPath := filepath.Join(dir, jointsFile)
	jointRows, err := readTable(jointsPath)
	if err != nil {
		return nil, err
	}

	f := fabric.New(baseName(dir))

	for i, row := range jointRows {
		j, err := jointFromRow(jointsPath, i+1, row)
		if err != nil {
			return nil, err
		}
		if !f.AddJoint(j) {
			return nil, &FormatError{
				Path: jointsPath, Row: i + 1, Field: "index",
				Msg: fmt.Sprintf("duplicate joint index %d", j.Index),
			}
		}
	}

	intervalsPath := filepath.Join(dir, intervalsFile)
	intervalRows, err := readTable(intervalsPath)
	if err != nil {
		return nil, err
	}

	for i, row := range intervalRows {
		iv, err := intervalFromRow(intervalsPath, i, row, f)
		if err != nil {
			return nil, err
		}
		f.AddInterval(iv)
	}

	return f, nil
}

// tableRow is one data row keyed by header column name.
type tableRow map[string]string

// readTable reads a semicolon-delimited table with a required header row.
// LazyQuotes keeps the spreadsheet-style `="a,b"` cells intact: the
// leading `=` makes the field bare, so its interior quotes must survive.
func readTable(path string) ([]tableRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = ';'
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &FormatError{Path: path, Msg: "empty table, header row required"}
	}
	if err != nil {
		return nil, &FormatError{Path: path, Msg: "cannot read header row", Err: err}
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []tableRow
	for rowNum := 1; ; rowNum++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{Path: path, Row: rowNum, Msg: "malformed row", Err: err}
		}
		row := make(tableRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// cell returns a named column value or a FormatError if the column is
// absent from the table.
func cell(path string, rowNum int, row tableRow, name string) (string, error) {
	v, ok := row[name]
	if !ok {
		return "", &FormatError{Path: path, Row: rowNum, Field: name, Msg: "missing column"}
	}
	return v, nil
}

// floatCell parses a numeric cell, normalizing the comma decimal
// separator the exporter's locale produces.
func floatCell(path string, rowNum int, row tableRow, name string) (float32, error) {
	s, err := cell(path, rowNum, row, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 32)
	if err != nil {
		return 0, &FormatError{
			Path: path, Row: rowNum, Field: name,
			Msg: fmt.Sprintf("malformed number %q", s), Err: err,
		}
	}
	return float32(v), nil
}

// intCell parses an integer cell. No separator normalization applies.
func intCell(path string, rowNum int, row tableRow, name string) (int, error) {
	s, err := cell(path, rowNum, row, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FormatError{
			Path: path, Row: rowNum, Field: name,
			Msg: fmt.Sprintf("malformed integer %q", s), Err: err,
		}
	}
	return v, nil
}

// jointPair decodes the spreadsheet-style endpoint pair. The cell may
// arrive as `="3,7"`, `"3,7"` or plain `3,7`; the `=` and quotes are
// stripped and the remainder split on the comma, which here separates
// the two indices and is never a decimal separator.
func jointPair(path string, rowNum int, raw string) (int, int, error) {
	s := strings.NewReplacer("=", "", `"`, "").Replace(strings.TrimSpace(raw))
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, &FormatError{
			Path: path, Row: rowNum, Field: "joints",
			Msg: fmt.Sprintf("malformed endpoint pair %q", raw),
		}
	}
	alpha, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, &FormatError{
			Path: path, Row: rowNum, Field: "joints",
			Msg: fmt.Sprintf("malformed endpoint pair %q", raw), Err: err,
		}
	}
	omega, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, &FormatError{
			Path: path, Row: rowNum, Field: "joints",
			Msg: fmt.Sprintf("malformed endpoint pair %q", raw), Err: err,
		}
	}
	return alpha, omega, nil
}

func jointFromRow(path string, rowNum int, row tableRow) (*fabric.Joint, error) {
	index, err := intCell(path, rowNum, row, "index")
	if err != nil {
		return nil, err
	}
	x, err := floatCell(path, rowNum, row, "x")
	if err != nil {
		return nil, err
	}
	y, err := floatCell(path, rowNum, row, "y")
	if err != nil {
		return nil, err
	}
	z, err := floatCell(path, rowNum, row, "z")
	if err != nil {
		return nil, err
	}
	return &fabric.Joint{Index: index, Location: mat32.V3(x, y, z)}, nil
}

// intervalFromRow builds one interval. index is the 0-based position in
// the table; the CSV form carries no interval index column, so the
// sequence position is authoritative. The table names the stiffness
// column "elasticity".
func intervalFromRow(path string, index int, row tableRow, f *fabric.Fabric) (*fabric.Interval, error) {
	rowNum := index + 1

	rawPair, err := cell(path, rowNum, row, "joints")
	if err != nil {
		return nil, err
	}
	alphaIdx, omegaIdx, err := jointPair(path, rowNum, rawPair)
	if err != nil {
		return nil, err
	}

	rawType, err := cell(path, rowNum, row, "type")
	if err != nil {
		return nil, err
	}
	typ, ok := fabric.ParseIntervalType(strings.TrimSpace(rawType))
	if !ok {
		return nil, &FormatError{
			Path: path, Row: rowNum, Field: "type",
			Msg: fmt.Sprintf("unknown interval type %q", rawType),
		}
	}

	strain, err := floatCell(path, rowNum, row, "strain")
	if err != nil {
		return nil, err
	}
	stiffness, err := floatCell(path, rowNum, row, "elasticity")
	if err != nil {
		return nil, err
	}
	linearDensity, err := floatCell(path, rowNum, row, "linear density")
	if err != nil {
		return nil, err
	}
	role, err := cell(path, rowNum, row, "role")
	if err != nil {
		return nil, err
	}
	length, err := floatCell(path, rowNum, row, "length")
	if err != nil {
		return nil, err
	}

	alpha, ok := f.Joint(alphaIdx)
	if !ok {
		return nil, &ReferenceError{Path: path, Interval: index, Joint: alphaIdx}
	}
	omega, ok := f.Joint(omegaIdx)
	if !ok {
		return nil, &ReferenceError{Path: path, Interval: index, Joint: omegaIdx}
	}

	return &fabric.Interval{
		Index:         index,
		Alpha:         alpha,
		Omega:         omega,
		Type:          typ,
		Strain:        strain,
		Stiffness:     stiffness,
		LinearDensity: linearDensity,
		Role:          fabric.Role(strings.TrimSpace(role)),
		Length:        length,
	}, nil
}
