package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pretenst/fabric/pkg/assemble"
	"github.com/pretenst/fabric/pkg/kernel"
	"github.com/pretenst/fabric/pkg/kernel/sdfx"
)

const testJSON = `{
  "joints": [
    {"index": 0, "x": 0, "y": 0, "z": 0},
    {"index": 1, "x": 2, "y": 0, "z": 0}
  ],
  "intervals": [
    {"joints": [0, 1], "type": "Pull", "strain": 0, "stiffness": 0.0001,
     "linearDensity": 0.01, "role": "Ring", "length": 2}
  ]
}`

// testApp uses a coarse tessellation to keep imports fast.
func testApp() *App {
	return &App{
		kernel: sdfx.New(8),
		lib:    assemble.DefaultLibrary(),
	}
}

func TestImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.json")
	if err := os.WriteFile(path, []byte(testJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	result := testApp().Import(path)
	if len(result.Errors) != 0 {
		t.Fatalf("import errors: %v", result.Errors)
	}
	if result.Name != "pair" {
		t.Errorf("name = %q, want %q", result.Name, "pair")
	}
	if result.Joints != 2 || result.Intervals != 1 {
		t.Errorf("counts = %d joints, %d intervals", result.Joints, result.Intervals)
	}
	if len(result.Meshes) != 3 {
		t.Fatalf("mesh count = %d, want 3", len(result.Meshes))
	}

	if result.Meshes[0].PartName != "I0 Ring (J0 ~ J1)" {
		t.Errorf("interval mesh name = %q", result.Meshes[0].PartName)
	}
	if result.Meshes[0].Color != rolePalette["Ring"] {
		t.Errorf("interval color = %q, want role palette entry", result.Meshes[0].Color)
	}
	if result.Meshes[1].Color != jointColor {
		t.Errorf("joint color = %q, want %q", result.Meshes[1].Color, jointColor)
	}
}

func TestImportMissingFile(t *testing.T) {
	result := testApp().Import(filepath.Join(t.TempDir(), "nope.json"))
	if len(result.Errors) == 0 {
		t.Fatal("missing file should report an error")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("missing file produced %d meshes", len(result.Meshes))
	}
}

func TestImportValidationFailure(t *testing.T) {
	// Zero stiffness blocks assembly but still reports counts.
	bad := `{
	  "joints": [
	    {"index": 0, "x": 0, "y": 0, "z": 0},
	    {"index": 1, "x": 2, "y": 0, "z": 0}
	  ],
	  "intervals": [
	    {"joints": [0, 1], "type": "Pull", "strain": 0, "stiffness": 0,
	     "linearDensity": 0.01, "role": "Ring", "length": 2}
	  ]
	}`
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	result := testApp().Import(path)
	if len(result.Errors) == 0 {
		t.Fatal("validation failure should be reported")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("invalid fabric produced %d meshes", len(result.Meshes))
	}
	if result.Joints != 2 {
		t.Errorf("counts should still be reported, joints = %d", result.Joints)
	}
}

func TestMeshColorUnknownRole(t *testing.T) {
	m := &kernel.Mesh{Role: "Mystery"}
	if meshColor(m) != defaultColor {
		t.Errorf("unknown role color = %q, want default", meshColor(m))
	}
}
