package config

import (
	"os"
	"strconv"
)

// Configuration key constants to prevent typos and enable autocomplete
const (
	// KeyLogFile is the operation log location. Relative paths resolve
	// against the working directory of the invocation.
	KeyLogFile = "LOG_FILE"

	// KeyDirPerms is the octal mode for newly created directories.
	KeyDirPerms = "DIR_PERMS"

	// KeyFilePerms is the octal mode for newly created files.
	KeyFilePerms = "FILE_PERMS"

	// KeyWorkerIsolation toggles running mutating operations in isolated
	// worker processes. Disabling it runs them in-process.
	KeyWorkerIsolation = "WORKER_ISOLATION"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyLogFile:         "log.txt",
	KeyDirPerms:        "0755",
	KeyFilePerms:       "0644",
	KeyWorkerIsolation: "true",
}

// ParsePerm parses an octal permission string (e.g. "0644"). Invalid values
// fall back to the provided mode.
func ParsePerm(value string, fallback os.FileMode) os.FileMode {
	parsed, err := strconv.ParseUint(value, 8, 32)
	if err != nil || parsed == 0 || parsed > 0o777 {
		return fallback
	}
	return os.FileMode(parsed)
}
