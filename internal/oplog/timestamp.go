package oplog

import "time"

// timestampLayout matches the log entry prefix: [YYYY-MM-DD HH:MM:SS]
const timestampLayout = "[2006-01-02 15:04:05]"

// Timestamp returns the current local time formatted as a log entry prefix.
func Timestamp() string {
	return time.Now().Format(timestampLayout)
}
