package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeSchedules starts all the cron jobs (currently just one)
func (serverHandler *ServerHandler) InitializeSchedules() {
	interval := serverHandler.ServerConfig.ScratchSweepMinutes
	if interval <= 0 {
		Logger.Info("Scratch sweeping disabled")
		return
	}
	maxAge := time.Duration(interval) * time.Minute

	c := cron.New()
	var sweepJob cron.Job
	sweepJob = cron.FuncJob(func() {
		serverHandler.sweepScratchJobFunc(maxAge)
	})
	sweepJob = cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(sweepJob) //ensure we don't kick off another if old one is still running
	c.AddJob(fmt.Sprintf("@every %dm", interval), sweepJob)
	Logger.Info("Adding scratch sweep job scheduler", "interval_minutes", interval)
	c.Start()
}

// sweepScratchJobFunc removes scratch files orphaned by crashed requests.
// Requests normally delete their own spool file on completion
func (serverHandler *ServerHandler) sweepScratchJobFunc(maxAge time.Duration) {
	// Add panic recovery to prevent entire application crash
	defer func() {
		if r := recover(); r != nil {
			Logger.Error("Panic recovered in scratch sweep job", "panic", r)
		}
	}()

	removed, err := SweepScratch(serverHandler.ServerConfig.ScratchPath, maxAge)
	if err != nil {
		Logger.Error("Error sweeping scratch directory", "path", serverHandler.ServerConfig.ScratchPath, "error", err)
		return
	}
	if removed > 0 {
		Logger.Info("Swept orphaned scratch files", "removed", removed)
	}
}

// SweepScratch deletes regular files under scratchPath older than maxAge and
// reports how many were removed
func SweepScratch(scratchPath string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(scratchPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			Logger.Warn("Unable to stat scratch file", "name", entry.Name(), "error", err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(scratchPath, entry.Name())
		if err := os.Remove(path); err != nil {
			Logger.Warn("Unable to remove scratch file", "path", path, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
