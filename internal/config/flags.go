package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-t/-topdir   storage top directory path
//	-c/-config   json file path with configs
//
// Positional arguments are left for the calling command to consume via
// flag.Args(); the administrative tools take their username/slot/status
// arguments positionally after the flags.
func ParseFlags() *StructuredConfig {
	var topDir string
	var jsonConfigPath string

	flag.StringVar(&topDir, "t", "", "Storage top directory path")
	flag.StringVar(&topDir, "topdir", "", "Storage top directory path (alias)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			TopDir: topDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
