// Package kernel defines the abstract geometry kernel interface.
// Implementations provide prototype solids and transform application
// behind this interface, so the assembler never touches a concrete
// geometry library.
package kernel

import "github.com/pretenst/fabric/pkg/place"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Prototype solids, centered on the origin. A cylinder's long
	// axis is the given reference axis.
	Cylinder(height, radius float64, axis place.Axis) Solid
	Sphere(radius float64) Solid

	// Place applies a placement transform: scale first, then rotation,
	// then translation.
	Place(s Solid, t place.Transform) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
