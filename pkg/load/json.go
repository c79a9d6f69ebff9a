package load

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pretenst/fabric/pkg/fabric"
	mat32 "goki.dev/mat32/v2"
)

// The document schema uses pointer fields so that absent keys are
// distinguishable from zero values and can be rejected as FormatErrors.

type jointDoc struct {
	Index *int     `json:"index"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Z     *float64 `json:"z"`
}

type intervalDoc struct {
	Joints        []int    `json:"joints"`
	Type          *string  `json:"type"`
	Strain        *float64 `json:"strain"`
	Stiffness     *float64 `json:"stiffness"`
	LinearDensity *float64 `json:"linearDensity"`
	Role          *string  `json:"role"`
	Length        *float64 `json:"length"`
}

type fabricDoc struct {
	Joints    []jointDoc    `json:"joints"`
	Intervals []intervalDoc `json:"intervals"`
}

// LoadJSON reads a fabric from a single JSON document.
func LoadJSON(path string) (*fabric.Fabric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	var doc fabricDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Path: path, Msg: "invalid JSON document", Err: err}
	}
	if doc.Joints == nil {
		return nil, &FormatError{Path: path, Field: "joints", Msg: "missing joints array"}
	}
	if doc.Intervals == nil {
		return nil, &FormatError{Path: path, Field: "intervals", Msg: "missing intervals array"}
	}

	f := fabric.New(baseName(path))

	for i, jd := range doc.Joints {
		row := i + 1
		if field := jd.missing(); field != "" {
			return nil, &FormatError{Path: path, Row: row, Field: field, Msg: "missing joint field"}
		}
		j := &fabric.Joint{
			Index:    *jd.Index,
			Location: mat32.V3(float32(*jd.X), float32(*jd.Y), float32(*jd.Z)),
		}
		if !f.AddJoint(j) {
			return nil, &FormatError{
				Path: path, Row: row, Field: "index",
				Msg: fmt.Sprintf("duplicate joint index %d", j.Index),
			}
		}
	}

	for i, id := range doc.Intervals {
		iv, err := id.toInterval(path, i, f)
		if err != nil {
			return nil, err
		}
		f.AddInterval(iv)
	}

	return f, nil
}

// missing returns the name of the first absent required field, or "".
func (jd jointDoc) missing() string {
	switch {
	case jd.Index == nil:
		return "index"
	case jd.X == nil:
		return "x"
	case jd.Y == nil:
		return "y"
	case jd.Z == nil:
		return "z"
	}
	return ""
}

// missing returns the name of the first absent required field, or "".
func (id intervalDoc) missing() string {
	switch {
	case id.Joints == nil:
		return "joints"
	case id.Type == nil:
		return "type"
	case id.Strain == nil:
		return "strain"
	case id.Stiffness == nil:
		return "stiffness"
	case id.LinearDensity == nil:
		return "linearDensity"
	case id.Role == nil:
		return "role"
	case id.Length == nil:
		return "length"
	}
	return ""
}

// toInterval resolves one interval document against the loaded joints.
// index is the 0-based position in the source sequence, which is
// authoritative regardless of any index-like content in the input.
func (id intervalDoc) toInterval(path string, index int, f *fabric.Fabric) (*fabric.Interval, error) {
	row := index + 1
	if field := id.missing(); field != "" {
		return nil, &FormatError{Path: path, Row: row, Field: field, Msg: "missing interval field"}
	}
	if len(id.Joints) != 2 {
		return nil, &FormatError{
			Path: path, Row: row, Field: "joints",
			Msg: fmt.Sprintf("endpoint pair has %d entries, want 2", len(id.Joints)),
		}
	}

	typ, ok := fabric.ParseIntervalType(*id.Type)
	if !ok {
		return nil, &FormatError{
			Path: path, Row: row, Field: "type",
			Msg: fmt.Sprintf("unknown interval type %q", *id.Type),
		}
	}

	alpha, ok := f.Joint(id.Joints[0])
	if !ok {
		return nil, &ReferenceError{Path: path, Interval: index, Joint: id.Joints[0]}
	}
	omega, ok := f.Joint(id.Joints[1])
	if !ok {
		return nil, &ReferenceError{Path: path, Interval: index, Joint: id.Joints[1]}
	}

	return &fabric.Interval{
		Index:         index,
		Alpha:         alpha,
		Omega:         omega,
		Type:          typ,
		Strain:        float32(*id.Strain),
		Stiffness:     float32(*id.Stiffness),
		LinearDensity: float32(*id.LinearDensity),
		Role:          fabric.Role(*id.Role),
		Length:        float32(*id.Length),
	}, nil
}
