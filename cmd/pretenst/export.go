package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pretenst/fabric/internal/config"
	"github.com/pretenst/fabric/internal/observability"
	"github.com/pretenst/fabric/pkg/assemble"
	"github.com/pretenst/fabric/pkg/fabric"
	"github.com/pretenst/fabric/pkg/kernel"
	"github.com/pretenst/fabric/pkg/kernel/sdfx"
	"github.com/pretenst/fabric/pkg/load"
	"github.com/pretenst/fabric/pkg/place"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <input>",
	Short: "Export a fabric as binary STL.",
	Long: `export loads a structure (a .json file, or a .csv file/directory
holding joints.csv and intervals.csv), validates it, assembles the scene
geometry and writes a single binary STL file.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "",
		"output STL path (default <input name>.stl)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := observability.GetLogger()
	cfg := config.Get()

	f, err := loadValidated(log, args[0])
	if err != nil {
		return err
	}

	axis, err := place.ParseAxis(cfg.Import.TrackAxis)
	if err != nil {
		return err
	}

	k := sdfx.New(cfg.Mesh.Cells)
	lib := assemble.DefaultLibrary().WithAxis(axis)
	meshes, err := assemble.Assemble(f, k, lib, assemble.Options{
		JointRadius: cfg.Import.JointRadius,
	})
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = f.Name + ".stl"
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer file.Close()

	if err := kernel.WriteSTL(file, meshes...); err != nil {
		return err
	}

	log.Info("exported fabric",
		zap.String("path", out),
		zap.Int("joints", f.JointCount()),
		zap.Int("intervals", f.IntervalCount()),
		zap.Int("meshes", len(meshes)))
	return nil
}

// loadValidated loads a fabric and runs validation, logging warnings
// and failing on any blocking error.
func loadValidated(log *zap.Logger, path string) (*fabric.Fabric, error) {
	f, err := load.Load(path)
	if err != nil {
		return nil, err
	}

	result := fabric.ValidateAll(f)
	for _, w := range result.Warnings {
		log.Warn("validation warning",
			zap.Int("interval", w.Interval),
			zap.Int("joint", w.Joint),
			zap.String("message", w.Message))
	}
	if len(result.Errors) > 0 {
		msgs := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("fabric failed validation:\n  %s", strings.Join(msgs, "\n  "))
	}

	log.Info("loaded fabric",
		zap.String("name", f.Name),
		zap.Int("joints", f.JointCount()),
		zap.Int("intervals", f.IntervalCount()))
	return f, nil
}
