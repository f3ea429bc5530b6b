// Package config loads and validates application settings from environment
// variables (TASKBOARD_ prefix), an optional config.yaml, and a local .env
// file.
package config
