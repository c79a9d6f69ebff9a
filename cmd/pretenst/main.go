// Command pretenst loads Pretenst structure files and exports
// renderable geometry without a GUI.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/pretenst/fabric/internal/observability"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		observability.GetLogger().Error("command failed", zap.Error(err))
	}
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}
