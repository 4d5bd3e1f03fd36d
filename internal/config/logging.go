package config

import "os"

// LogPath is the rotating log file destination, empty when file
// logging is disabled.
func LogPath() string {
	return os.Getenv("ADVENT_LOG_PATH")
}
