package fabric

import (
	"testing"

	mat32 "goki.dev/mat32/v2"
)

func TestNewFabric(t *testing.T) {
	f := New("halo")
	if f.Name != "halo" {
		t.Errorf("name = %q, want %q", f.Name, "halo")
	}
	if f.JointCount() != 0 || f.IntervalCount() != 0 {
		t.Errorf("empty fabric reports %d joints, %d intervals",
			f.JointCount(), f.IntervalCount())
	}
}

func TestAddJointAndLookup(t *testing.T) {
	f := New("test")

	j := &Joint{Index: 3, Location: mat32.V3(1, 2, 3)}
	if !f.AddJoint(j) {
		t.Fatal("AddJoint rejected a fresh index")
	}
	if f.JointCount() != 1 {
		t.Errorf("joint count = %d, want 1", f.JointCount())
	}

	got, ok := f.Joint(3)
	if !ok {
		t.Fatal("Joint(3) not found")
	}
	if got != j {
		t.Error("Joint(3) returned a different joint")
	}

	if _, ok := f.Joint(99); ok {
		t.Error("Joint(99) should not be found")
	}
}

func TestAddJointDuplicateIndex(t *testing.T) {
	f := New("test")
	if !f.AddJoint(&Joint{Index: 1}) {
		t.Fatal("first AddJoint failed")
	}
	if f.AddJoint(&Joint{Index: 1, Location: mat32.V3(9, 9, 9)}) {
		t.Error("AddJoint accepted a duplicate index")
	}
	if f.JointCount() != 1 {
		t.Errorf("joint count after rejected add = %d, want 1", f.JointCount())
	}
	got, _ := f.Joint(1)
	if got.Location != (mat32.Vec3{}) {
		t.Error("rejected add overwrote the original joint")
	}
}

func TestSparseJointIndices(t *testing.T) {
	// Source indices need not be dense; lookups go by the source index.
	f := New("test")
	for _, idx := range []int{0, 5, 17} {
		if !f.AddJoint(&Joint{Index: idx}) {
			t.Fatalf("AddJoint(%d) failed", idx)
		}
	}
	if _, ok := f.Joint(17); !ok {
		t.Error("Joint(17) not found")
	}
	if _, ok := f.Joint(1); ok {
		t.Error("Joint(1) should not exist in a sparse set")
	}
}

func TestIntervalSpan(t *testing.T) {
	alpha := &Joint{Index: 0, Location: mat32.V3(1, 0, 0)}
	omega := &Joint{Index: 1, Location: mat32.V3(4, 4, 0)}
	iv := &Interval{Alpha: alpha, Omega: omega}

	span := iv.Span()
	want := mat32.V3(3, 4, 0)
	if span != want {
		t.Errorf("span = %v, want %v", span, want)
	}
	if span.Length() != 5 {
		t.Errorf("span length = %v, want 5", span.Length())
	}
}

func TestNames(t *testing.T) {
	alpha := &Joint{Index: 1}
	omega := &Joint{Index: 7}
	if alpha.Name() != "J1" {
		t.Errorf("joint name = %q, want %q", alpha.Name(), "J1")
	}

	iv := &Interval{Index: 3, Alpha: alpha, Omega: omega, Role: RoleRing}
	want := "I3 Ring (J1 ~ J7)"
	if iv.Name() != want {
		t.Errorf("interval name = %q, want %q", iv.Name(), want)
	}
}

func TestRoleCounts(t *testing.T) {
	f := New("test")
	a := &Joint{Index: 0}
	b := &Joint{Index: 1}
	f.AddJoint(a)
	f.AddJoint(b)

	for _, role := range []Role{RoleRing, RoleRing, RoleTriangle} {
		f.AddInterval(&Interval{Alpha: a, Omega: b, Role: role})
	}

	counts := f.RoleCounts()
	if counts[RoleRing] != 2 {
		t.Errorf("Ring count = %d, want 2", counts[RoleRing])
	}
	if counts[RoleTriangle] != 1 {
		t.Errorf("Triangle count = %d, want 1", counts[RoleTriangle])
	}
	if len(counts) != 2 {
		t.Errorf("distinct roles = %d, want 2", len(counts))
	}
}
