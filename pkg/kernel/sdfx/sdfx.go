// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/pretenst/fabric/pkg/kernel"
	"github.com/pretenst/fabric/pkg/place"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 64

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a new SdfxKernel tessellating at the given marching cubes
// resolution; zero or negative picks the default.
func New(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Cylinder creates a cylinder with its long axis along the given
// reference axis, centered on the origin. sdf.Cylinder3D builds along
// +Z, so the other two axes are a fixed quarter-turn away.
func (k *SdfxKernel) Cylinder(height, radius float64, axis place.Axis) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	switch axis {
	case place.AxisX:
		s = sdf.Transform3D(s, sdf.RotateY(math.Pi/2))
	case place.AxisY:
		s = sdf.Transform3D(s, sdf.RotateX(-math.Pi/2))
	}
	return wrap(s)
}

// Sphere creates a sphere centered on the origin.
func (k *SdfxKernel) Sphere(radius float64) kernel.Solid {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Sphere3D: %v", err))
	}
	return wrap(s)
}

// Place applies a placement transform as a single matrix: scale first,
// then rotation, then translation. The quaternion is decomposed to
// axis/angle at this boundary since sdfx matrices are built from those.
func (k *SdfxKernel) Place(s kernel.Solid, t place.Transform) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{
		X: float64(t.Translation.X),
		Y: float64(t.Translation.Y),
		Z: float64(t.Translation.Z),
	})

	aa := t.Rotation.ToAxisAngle()
	axis := v3.Vec{X: float64(aa.X), Y: float64(aa.Y), Z: float64(aa.Z)}
	if aa.W != 0 && axis.Length() > 0 {
		m = m.Mul(sdf.Rotate3d(axis, float64(aa.W)))
	}

	m = m.Mul(sdf.Scale3d(v3.Vec{
		X: float64(t.Scale.X),
		Y: float64(t.Scale.Y),
		Z: float64(t.Scale.Z),
	}))

	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Flat shading: one face normal per triangle.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
