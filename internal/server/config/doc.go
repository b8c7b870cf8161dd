// Package config defines the server configuration structure for
// roomstore-server, its defaults, and validation.
package config
