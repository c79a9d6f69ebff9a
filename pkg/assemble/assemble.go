// Package assemble turns a loaded fabric into renderable meshes: one
// per interval and one per joint, placed through the placement
// calculator and built by a geometry kernel. The assembler is
// read-only and never mutates the fabric; each call produces an
// independent mesh set, so re-importing is a plain replace for the
// caller.
package assemble

import (
	"fmt"

	"github.com/pretenst/fabric/pkg/fabric"
	"github.com/pretenst/fabric/pkg/kernel"
	"github.com/pretenst/fabric/pkg/place"
)

// DefaultJointRadius is used when the options leave the radius unset.
// It doubles as the strut inset distance.
const DefaultJointRadius = 0.1

// Prototype describes the unit geometry built for one interval type:
// its long axis and native dimensions. Placement scales multiply these
// baselines, so a non-unit native length composes correctly.
type Prototype struct {
	Axis   place.Axis
	Length float64 // native length along Axis
	Radius float64 // native cross-section radius
}

// Library maps interval types to their prototypes. A type without an
// entry cannot be assembled.
type Library map[fabric.IntervalType]Prototype

// DefaultLibrary returns the standard prototypes: unit cylinders along
// +Z (the kernel's cylinder axis), with cables at a quarter of the
// strut cross-section.
func DefaultLibrary() Library {
	return Library{
		fabric.Push: {Axis: place.AxisZ, Length: 1, Radius: 0.01},
		fabric.Pull: {Axis: place.AxisZ, Length: 1, Radius: 0.0025},
	}
}

// WithAxis returns a copy of the library with every prototype's
// reference axis replaced, for hosts whose prototype geometry is not
// Z-aligned.
func (l Library) WithAxis(axis place.Axis) Library {
	out := make(Library, len(l))
	for t, p := range l {
		p.Axis = axis
		out[t] = p
	}
	return out
}

// Options control assembly.
type Options struct {
	JointRadius float32 // joint sphere radius and strut inset; 0 = default
}

// Assemble produces one mesh per interval and per joint. Any prototype
// lookup or placement failure aborts the whole batch: a silently
// missing member would misrepresent the structure.
func Assemble(f *fabric.Fabric, k kernel.Kernel, lib Library, opts Options) ([]*kernel.Mesh, error) {
	jointRadius := opts.JointRadius
	if jointRadius <= 0 {
		jointRadius = DefaultJointRadius
	}

	meshes := make([]*kernel.Mesh, 0, len(f.Intervals)+len(f.Joints))

	for _, iv := range f.Intervals {
		proto, ok := lib[iv.Type]
		if !ok {
			return nil, fmt.Errorf("assemble: no prototype for interval type %s", iv.Type)
		}

		tr, err := place.Interval(iv, proto.Axis, jointRadius)
		if err != nil {
			return nil, fmt.Errorf("assemble: interval %d: %w", iv.Index, err)
		}

		solid := k.Place(k.Cylinder(proto.Length, proto.Radius, proto.Axis), tr)
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("assemble: interval %d: %w", iv.Index, err)
		}
		mesh.PartName = iv.Name()
		mesh.Role = string(iv.Role)
		meshes = append(meshes, mesh)
	}

	for _, j := range f.Joints {
		solid := k.Place(k.Sphere(float64(jointRadius)), place.Joint(j))
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("assemble: joint %d: %w", j.Index, err)
		}
		mesh.PartName = j.Name()
		meshes = append(meshes, mesh)
	}

	return meshes, nil
}
