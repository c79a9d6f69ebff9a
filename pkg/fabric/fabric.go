package fabric

import (
	"fmt"

	mat32 "goki.dev/mat32/v2"
)

// Joint is a point location in the structure, referenced by its
// solver-assigned index. Indices are stable across the two source
// encodings but are not guaranteed to be a dense 0..N-1 range.
type Joint struct {
	Index    int        `json:"index"`
	Location mat32.Vec3 `json:"location"`
}

// Name returns the display name used for scene objects, e.g. "J12".
func (j *Joint) Name() string {
	return fmt.Sprintf("J%d", j.Index)
}

// Interval is an edge between two joints representing a structural
// member, carrying the physical parameters the solver produced for it.
// Alpha and Omega point into the owning Fabric's joint set.
type Interval struct {
	Index         int          `json:"index"` // 0-based position in the source sequence
	Alpha         *Joint       `json:"-"`
	Omega         *Joint       `json:"-"`
	Type          IntervalType `json:"type"`
	Strain        float32      `json:"strain"`
	Stiffness     float32      `json:"stiffness"`
	LinearDensity float32      `json:"linear_density"`
	Role          Role         `json:"role"`
	Length        float32      `json:"length"` // rest length from the solver
}

// Span returns the vector from the alpha joint to the omega joint.
func (iv *Interval) Span() mat32.Vec3 {
	return iv.Omega.Location.Sub(iv.Alpha.Location)
}

// Name returns the display name used for scene objects,
// e.g. "I3 Ring (J1 ~ J7)".
func (iv *Interval) Name() string {
	return fmt.Sprintf("I%d %s (J%d ~ J%d)", iv.Index, iv.Role, iv.Alpha.Index, iv.Omega.Index)
}

// Fabric is one loaded structure: the ordered joint and interval
// sequences plus an index lookup over the joints. A Fabric is built
// once by a loader and immutable afterwards; every load produces an
// independent value.
type Fabric struct {
	Name      string
	Joints    []*Joint
	Intervals []*Interval

	byIndex map[int]*Joint
}

// New creates an empty Fabric with the given display name.
func New(name string) *Fabric {
	return &Fabric{
		Name:    name,
		byIndex: make(map[int]*Joint),
	}
}

// AddJoint appends a joint, preserving source order. It reports false
// if the joint's index is already taken, leaving the fabric unchanged.
func (f *Fabric) AddJoint(j *Joint) bool {
	if _, exists := f.byIndex[j.Index]; exists {
		return false
	}
	f.Joints = append(f.Joints, j)
	f.byIndex[j.Index] = j
	return true
}

// AddInterval appends an interval, preserving source order.
func (f *Fabric) AddInterval(iv *Interval) {
	f.Intervals = append(f.Intervals, iv)
}

// Joint returns the joint with the given source index.
func (f *Fabric) Joint(index int) (*Joint, bool) {
	j, ok := f.byIndex[index]
	return j, ok
}

// JointCount returns the number of loaded joints.
func (f *Fabric) JointCount() int {
	return len(f.Joints)
}

// IntervalCount returns the number of loaded intervals.
func (f *Fabric) IntervalCount() int {
	return len(f.Intervals)
}

// RoleCounts returns how many intervals carry each role.
func (f *Fabric) RoleCounts() map[Role]int {
	counts := make(map[Role]int)
	for _, iv := range f.Intervals {
		counts[iv.Role]++
	}
	return counts
}
