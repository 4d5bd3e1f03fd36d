package config

import "os"

// InputDir is the directory holding puzzle input files.
func InputDir() string {
	dir, ok := os.LookupEnv("ADVENT_INPUT_DIR")
	if !ok {
		return "inputs"
	}
	return dir
}
