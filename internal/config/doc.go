// Package config provides configuration structures and utilities for
// treelister. It defines the main options for directory scanning, report
// formatting, and history recording, plus the loader for the optional
// .treelister YAML configuration file.
package config
