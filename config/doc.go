// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Missing optional values (port, map view, marker scale, time zone) fall back
// to the defaults of the Bluebikes traffic map.
package config
