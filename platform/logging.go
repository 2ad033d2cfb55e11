// Package platform holds the ambient concerns that sit around the maze
// core: logging, configuration, and panic recovery, kept separate from the
// grid/pathfinding/explorer packages so those stay dependency-free of how a
// given binary wires them up.
package platform

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	logDirName  = "logs"
	logFileName = "mazebot.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB

	// maxRotatedLogs bounds how many rotated-aside log files accumulate
	// under logDirName before the oldest are pruned.
	maxRotatedLogs = 5
)

// SetupLogging configures the standard logger's output from cfg.Debug and
// cfg.LogDir. When cfg.Debug is false, logging is disabled entirely
// (redirected to io.Discard). When true, logs are appended to
// logs/mazebot.log under cfg.LogDir, rotating the existing file aside by
// timestamp first if it has grown past maxLogSize and pruning rotated
// files beyond maxRotatedLogs. The returned file, if non-nil, must be
// closed by the caller on exit.
func SetupLogging(cfg Config) *os.File {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return nil
	}

	logDir := filepath.Join(cfg.LogDir, logDirName)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "platform: failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("mazebot-%s.log", time.Now().Format("2006-01-02-15-04-05")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "platform: failed to rotate log file: %v\n", err)
		}
		pruneRotatedLogs(logDir)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "platform: failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== mazebot started (maze %dx%d seed=%d braiding=%.2f) ===",
		cfg.Maze.Rows, cfg.Maze.Cols, cfg.Maze.Seed, cfg.Maze.Braiding)

	return logFile
}

// pruneRotatedLogs deletes the oldest rotated-aside log files in logDir
// once more than maxRotatedLogs of them have accumulated, so a long-running
// deployment doesn't fill its disk with timestamped backups.
func pruneRotatedLogs(logDir string) {
	matches, err := filepath.Glob(filepath.Join(logDir, "mazebot-*.log"))
	if err != nil || len(matches) <= maxRotatedLogs {
		return
	}

	sort.Strings(matches) // timestamped names sort chronologically
	for _, old := range matches[:len(matches)-maxRotatedLogs] {
		if err := os.Remove(old); err != nil {
			fmt.Fprintf(os.Stderr, "platform: failed to prune rotated log %q: %v\n", old, err)
		}
	}
}
