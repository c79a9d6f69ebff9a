// Package place computes the rigid+scale transforms that position
// prototype geometry for a fabric's intervals and joints. All
// functions are pure: same inputs, same transform, no I/O.
package place

import (
	"fmt"

	"github.com/pretenst/fabric/pkg/fabric"
	mat32 "goki.dev/mat32/v2"
)

// DiameterFactor converts sqrt(stiffness) into a visual cross-section
// multiplier. Solver stiffness values are tiny; without this the
// members would be invisible hairlines.
const DiameterFactor = 200

// Axis identifies the prototype mesh's long axis, the source direction
// for the rotation that aligns the mesh to an interval's span. Only the
// three positive basis directions are supported; the per-component
// scale formula degenerates for anything not axis-aligned.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Vector returns the unit vector for the axis.
func (a Axis) Vector() mat32.Vec3 {
	switch a {
	case AxisX:
		return mat32.V3(1, 0, 0)
	case AxisY:
		return mat32.V3(0, 1, 0)
	case AxisZ:
		return mat32.V3(0, 0, 1)
	default:
		return mat32.Vec3{}
	}
}

// Valid reports whether the axis is one of the three basis directions.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis converts an external track-axis tag. Both the host
// encoding ("POS_X") and the bare form ("X") are accepted.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "POS_X", "X", "x":
		return AxisX, nil
	case "POS_Y", "Y", "y":
		return AxisY, nil
	case "POS_Z", "Z", "z":
		return AxisZ, nil
	default:
		return 0, &InvalidAxisError{Tag: s}
	}
}

// InvalidAxisError reports a reference axis outside the supported set.
type InvalidAxisError struct {
	Tag  string
	Axis Axis
}

func (e *InvalidAxisError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("place: cannot convert tracking axis %q", e.Tag)
	}
	return fmt.Sprintf("place: invalid reference axis %s", e.Axis)
}

// DegenerateSpanError reports an interval whose endpoints leave no
// usable span: coincident joints, or a strut inset consuming the whole
// length.
type DegenerateSpanError struct {
	Alpha, Omega int // joint indices
	Span         float32
}

func (e *DegenerateSpanError) Error() string {
	if e.Span == 0 {
		return fmt.Sprintf("place: joints %d and %d are coincident", e.Alpha, e.Omega)
	}
	return fmt.Sprintf("place: span %v between joints %d and %d is consumed by the joint inset",
		e.Span, e.Alpha, e.Omega)
}

// Transform places one prototype instance. Scale is a multiplier to be
// composed onto the prototype's own baseline scale, so prototypes with
// non-unit native geometry compose correctly.
type Transform struct {
	Translation mat32.Vec3 `json:"translation"`
	Rotation    mat32.Quat `json:"rotation"`
	Scale       mat32.Vec3 `json:"scale"`
}

// Identity returns the do-nothing transform.
func Identity() Transform {
	return Transform{
		Rotation: mat32.NewQuat(0, 0, 0, 1),
		Scale:    mat32.V3(1, 1, 1),
	}
}

// Interval computes the placement for one interval.
//
// The translation is the span midpoint. The rotation is the shortest
// arc taking the prototype's reference axis to the span direction, so
// the prototype keeps its native orientation around everything but the
// long axis. The scale combines a stiffness-derived diameter on the two
// cross-section axes with the effective length on the long axis; for
// Push intervals the length is inset by a joint radius at each end so
// struts terminate at the joint sphere's surface rather than its
// center (which assumes both endpoint spheres share one radius).
func Interval(iv *fabric.Interval, axis Axis, jointRadius float32) (Transform, error) {
	if !axis.Valid() {
		return Transform{}, &InvalidAxisError{Axis: axis}
	}

	span := iv.Span()
	length := span.Length()
	if length == 0 {
		return Transform{}, &DegenerateSpanError{Alpha: iv.Alpha.Index, Omega: iv.Omega.Index}
	}

	effective := length
	if iv.Type == fabric.Push {
		effective -= 2 * jointRadius
		if effective <= 0 {
			return Transform{}, &DegenerateSpanError{
				Alpha: iv.Alpha.Index, Omega: iv.Omega.Index, Span: length,
			}
		}
	}

	axisVec := axis.Vector()

	var rotation mat32.Quat
	rotation.SetFromUnitVectors(axisVec, span.Normal())

	diameter := mat32.Sqrt(iv.Stiffness) * DiameterFactor
	ones := mat32.V3(1, 1, 1)
	scale := ones.Sub(axisVec).MulScalar(diameter).Add(axisVec.MulScalar(effective))

	return Transform{
		Translation: iv.Alpha.Location.Add(iv.Omega.Location).MulScalar(0.5),
		Rotation:    rotation,
		Scale:       scale,
	}, nil
}

// Joint computes the placement for one joint: translation only, with
// the prototype's own orientation and scale untouched.
func Joint(j *fabric.Joint) Transform {
	t := Identity()
	t.Translation = j.Location
	return t
}
