package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProfileDirName marks a project-local profile directory.
const ProfileDirName = ".notes"

// FindRoot recursively looks upwards for a directory containing ProfileDirName.
// If found, returns the absolute path of that directory (not the marker).
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, ProfileDirName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

// ResolveDir picks the profile directory: the explicit path when given,
// then the nearest project-local .notes directory above cwd, then the
// user configuration directory. Dev runs (see IsDevRun) get a temp copy
// of the last one instead.
func ResolveDir(explicit, cwd string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if cwd != "" {
		if root, err := FindRoot(cwd); err == nil {
			return filepath.Join(root, ProfileDirName), nil
		}
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine profile directory: %w", err)
	}
	dir := filepath.Join(base, "notes")
	if devRun() {
		return DevDir(dir), nil
	}
	return dir, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
