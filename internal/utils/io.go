// Package utils provides internal utility functions used throughout the logger package.
//
// This package contains helper functions for common tasks such as log file path
// handling. These utilities are primarily for internal use by the destinations
// and are not intended to be part of the public API.
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// LogDirPermissions are the permissions used when creating missing log directories.
const LogDirPermissions = 0o750

// CleanLogPath normalizes a log file path and returns its absolute form.
//
// The function performs several checks, including:
// - Rejecting empty paths
// - Normalizing the path using filepath.Clean
// - Rejecting paths that name a directory, either syntactically or on disk
//
// Relative paths are resolved against the working directory.
func CleanLogPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ewrap.New("path cannot be empty")
	}

	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return "", ewrap.New("path names a directory").WithMetadata("path", path)
	}

	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return "", ewrap.New("path names a directory").WithMetadata("path", path)
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", ewrap.Wrap(err, "resolving absolute path").WithMetadata("path", path)
	}

	info, err := os.Stat(absPath)
	if err == nil && info.IsDir() {
		return "", ewrap.New("path names a directory").WithMetadata("path", absPath)
	}

	return absPath, nil
}

// EnsureDir creates the parent directory of path when it does not exist yet.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, LogDirPermissions)
	if err != nil {
		return ewrap.Wrapf(err, "creating log directory").
			WithMetadata("path", dir)
	}

	return nil
}

// Exists reports whether something already occupies path.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, ewrap.Wrap(err, "inspecting path").WithMetadata("path", path)
}
