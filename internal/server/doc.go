// Package server manages the lifecycle of the application's HTTP transport:
// construction, startup, and signal-driven graceful shutdown.
package server
