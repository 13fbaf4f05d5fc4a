// Package config handles configuration loading for the Atrium admin console.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults; a missing config
// file is not an error.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from ATRIUM_CONFIG environment variable
//  2. ./config.yaml (current directory)
//  3. ~/.config/atrium/console.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${ATRIUM_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Environment Overrides
//
// Individual values can be overridden without a config file:
//
//	ATRIUM_API_URL      Backend base URL
//	ATRIUM_KEYRING      Session database path
//	ATRIUM_JWT_SECRET   Token secret for dev auth mode
//
// # Configuration Sections
//
// Backend endpoint:
//
//	server:
//	  base_url: "https://api.atrium.example"
//	  request_timeout: "30s"
//
// Session storage:
//
//	keyring:
//	  path: "~/.local/share/atrium/session.db"
//
// Authentication:
//
//	auth:
//	  mode: "remote"   # remote (backend login) or dev (local fixture)
//	  jwt_secret: "${ATRIUM_JWT_SECRET}"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
package config
