package kernel

import "testing"

// quad builds a two-triangle square in the XY plane with +Z normals.
func quad() *Mesh {
	return &Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
		PartName: "quad",
	}
}

func TestMeshCounts(t *testing.T) {
	m := quad()
	if m.VertexCount() != 4 {
		t.Errorf("vertex count = %d, want 4", m.VertexCount())
	}
	if m.TriangleCount() != 2 {
		t.Errorf("triangle count = %d, want 2", m.TriangleCount())
	}
	if m.IsEmpty() {
		t.Error("quad reported empty")
	}
}

func TestEmptyMesh(t *testing.T) {
	m := &Mesh{}
	if !m.IsEmpty() {
		t.Error("empty mesh not reported empty")
	}
	if m.VertexCount() != 0 || m.TriangleCount() != 0 {
		t.Error("empty mesh has nonzero counts")
	}
}
