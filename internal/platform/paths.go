package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// IsUNCPath checks if a path is a UNC path (Windows network share)
func IsUNCPath(path string) bool {
	if runtime.GOOS != "windows" {
		return false
	}
	return strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "//")
}

// ValidatePath rejects paths that can never name a file on this platform.
// It does not touch the filesystem.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return &PathError{Path: path, Message: "path is empty"}
	}

	if strings.ContainsRune(path, 0) {
		return &PathError{Path: path, Message: "path contains a NUL byte"}
	}

	if runtime.GOOS == "windows" && !IsUNCPath(path) {
		// drive letter colon is the only legal ':'
		rest := path
		if vol := filepath.VolumeName(path); vol != "" {
			rest = path[len(vol):]
		}
		for _, char := range []string{"<", ">", ":", `"`, "|", "?", "*"} {
			if strings.Contains(rest, char) {
				return &PathError{Path: path, Message: "path contains invalid character: " + char}
			}
		}
	}

	return nil
}

// PathError represents a path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
