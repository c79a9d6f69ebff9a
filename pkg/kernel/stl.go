package kernel

import (
	"encoding/binary"
	"fmt"
	"io"
)

// stlHeaderSize is the fixed binary STL header length.
const stlHeaderSize = 80

// WriteSTL writes the meshes to w as one binary STL solid. Vertex
// indices are resolved to flat triangles; normals are taken from the
// first vertex of each triangle, which is exact for the flat-shaded
// meshes ToMesh produces.
func WriteSTL(w io.Writer, meshes ...*Mesh) error {
	var header [stlHeaderSize]byte
	copy(header[:], "pretenst fabric export")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: write header: %w", err)
	}

	var total uint32
	for _, m := range meshes {
		total += uint32(m.TriangleCount())
	}
	if err := binary.Write(w, binary.LittleEndian, total); err != nil {
		return fmt.Errorf("stl: write triangle count: %w", err)
	}

	for _, m := range meshes {
		if err := writeTriangles(w, m); err != nil {
			return fmt.Errorf("stl: mesh %q: %w", m.PartName, err)
		}
	}

	return nil
}

func writeTriangles(w io.Writer, m *Mesh) error {
	// 12 floats (normal + 3 vertices) and a 2-byte attribute word.
	var tri [12]float32

	for t := 0; t < m.TriangleCount(); t++ {
		i0 := m.Indices[t*3]
		tri[0] = m.Normals[i0*3]
		tri[1] = m.Normals[i0*3+1]
		tri[2] = m.Normals[i0*3+2]

		for v := 0; v < 3; v++ {
			idx := m.Indices[t*3+v]
			tri[3+v*3] = m.Vertices[idx*3]
			tri[4+v*3] = m.Vertices[idx*3+1]
			tri[5+v*3] = m.Vertices[idx*3+2]
		}

		if err := binary.Write(w, binary.LittleEndian, tri); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}

	return nil
}
