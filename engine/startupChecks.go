package engine

import (
	"fmt"
	"os"
	"path/filepath"
)

// StartupChecks performs all the checks to make sure everything works
func (serverHandler *ServerHandler) StartupChecks() error {
	if err := scratchDirectoryChecks(serverHandler.ServerConfig.ScratchPath); err != nil {
		return err
	}
	if serverHandler.Renderer == nil {
		Logger.Error("No PDF renderer configured")
		return fmt.Errorf("no PDF renderer configured")
	}
	Logger.Info("Startup checks passed", "renderer", serverHandler.ServerConfig.RendererType)
	return nil
}

// scratchDirectoryChecks ensures the scratch directory exists and is writable
func scratchDirectoryChecks(scratchPath string) error {
	if scratchPath == "" {
		Logger.Error("Scratch path not configured")
		return fmt.Errorf("scratch path not configured")
	}
	if err := os.MkdirAll(scratchPath, os.ModePerm); err != nil {
		Logger.Error("Unable to create scratch directory", "path", scratchPath, "error", err)
		return err
	}

	probe := filepath.Join(scratchPath, ".write_probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		Logger.Error("Scratch directory is not writable", "path", scratchPath, "error", err)
		return err
	}
	os.Remove(probe)
	return nil
}
