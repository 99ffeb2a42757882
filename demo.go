package localuuid

import (
	"path/filepath"
	"strings"
)

const demoHost = "example.org"

// DemoBase builds the demo-mode name base for a process started in workDir
// with command line args:
//
//	example.org/<workDir relative to baseDir>/<args[0]>/<args[1]>/...
//
// workDir is written absolute when baseDir is not one of its ancestors.
// Both directories are compared after resolving symlinks.
func DemoBase(baseDir, workDir string, args []string) string {
	parts := []string{demoHost}

	base := resolvePath(baseDir)
	work := resolvePath(workDir)
	if rel, ok := relativeTo(base, work); ok {
		parts = append(parts, rel)
	} else {
		parts = append(parts, filepath.ToSlash(work))
	}

	parts = append(parts, args...)
	return strings.Join(parts, "/")
}

func resolvePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

func relativeTo(base, target string) (string, bool) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
