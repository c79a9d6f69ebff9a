package main

import (
	"context"
	"log"

	"github.com/pretenst/fabric/pkg/assemble"
	"github.com/pretenst/fabric/pkg/fabric"
	"github.com/pretenst/fabric/pkg/kernel"
	"github.com/pretenst/fabric/pkg/kernel/sdfx"
	"github.com/pretenst/fabric/pkg/load"
)

// rolePalette assigns distinct display colors per interval role.
var rolePalette = map[string]string{
	"NexusPush":   "#4A90D9",
	"ColumnPush":  "#3498DB",
	"Triangle":    "#2ECC71",
	"Ring":        "#E67E22",
	"NexusCross":  "#9B59B6",
	"ColumnCross": "#8E44AD",
	"BowMid":      "#E74C3C",
	"BowEnd":      "#C0392B",
	"FacePull":    "#F39C12",
}

const (
	jointColor   = "#ECF0F1"
	defaultColor = "#95A5A6"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	kernel kernel.Kernel
	lib    assemble.Library
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Role     string    `json:"role"`
	Color    string    `json:"color"`
}

// ImportResult is the full result returned to the frontend.
type ImportResult struct {
	Name      string     `json:"name"`
	Joints    int        `json:"joints"`
	Intervals int        `json:"intervals"`
	Meshes    []MeshData `json:"meshes"`
	Errors    []string   `json:"errors"`
	Warnings  []string   `json:"warnings"`
}

// NewApp creates a new App with the sdfx kernel and the default
// prototype library.
func NewApp() *App {
	return &App{
		kernel: sdfx.New(0),
		lib:    assemble.DefaultLibrary(),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Import loads a structure file, validates it, and returns scene
// meshes plus any findings. This is the primary binding called by the
// frontend. Each call produces a fresh mesh set; the frontend replaces
// its previous scene wholesale.
func (a *App) Import(path string) ImportResult {
	result := ImportResult{
		Meshes:   []MeshData{},
		Errors:   []string{},
		Warnings: []string{},
	}

	f, err := load.Load(path)
	if err != nil {
		log.Printf("Import load error: %v", err)
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Name = f.Name
	result.Joints = f.JointCount()
	result.Intervals = f.IntervalCount()

	validation := fabric.ValidateAll(f)
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}
	if len(validation.Errors) > 0 {
		for _, e := range validation.Errors {
			result.Errors = append(result.Errors, e.Error())
		}
		return result
	}

	meshes, err := assemble.Assemble(f, a.kernel, a.lib, assemble.Options{})
	if err != nil {
		log.Printf("Import assemble error: %v", err)
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	for _, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Role:     m.Role,
			Color:    meshColor(m),
		})
	}

	return result
}

// meshColor picks the display color: role palette for intervals, the
// joint color for joint spheres.
func meshColor(m *kernel.Mesh) string {
	if m.Role == "" {
		return jointColor
	}
	if c, ok := rolePalette[m.Role]; ok {
		return c
	}
	return defaultColor
}
