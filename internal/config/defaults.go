// ABOUTME: Centralized configuration defaults for moodlog
// ABOUTME: Contains magic numbers and hardcoded values for display and storage

package config

import "time"

// Backend names
const (
	BackendCharm  = "charm"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"

	DefaultBackend = BackendSQLite
)

// Backends lists every accepted backend name.
var Backends = []string{BackendSQLite, BackendFile, BackendCharm, BackendMemory}

// Display settings
const (
	DefaultListLimit = 20
	DisplayIDLength  = 8
	PreviewLength    = 60
	SeparatorWidth   = 60
)

// Storage settings
const (
	DefaultDBFilename = "moodlog.db"
	DefaultDirPerms   = 0700
)

// Export settings
const (
	ExportJSON     = "json"
	ExportYAML     = "yaml"
	ExportMarkdown = "markdown"
)

// Timeouts
const (
	DefaultStorageTimeout = 10 * time.Second
)
