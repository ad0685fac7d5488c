package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// DevDirName is the directory under the system temp dir that holds
// profiles of dev runs.
const DevDirName = "notes-dev"

// devRun is swapped in tests.
var devRun = IsDevRun

// IsDevRun reports whether the current process was built by `go run` or
// `go test`. Both place their binaries in the system temp directory.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// DevDir re-roots a profile directory under the system temp dir, so a dev
// run never touches the real user profile. Paths already inside the temp
// dir are returned unchanged.
func DevDir(path string) string {
	clean := filepath.Clean(path)
	tempRoot := os.TempDir()

	if rel, err := filepath.Rel(tempRoot, clean); err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if path == "" || name == "." || name == string(os.PathSeparator) {
		name = "default"
	}
	return filepath.Join(tempRoot, DevDirName, name)
}
