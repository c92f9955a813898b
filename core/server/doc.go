// Package server holds the configuration of the backend server process
// managed by the launcher: bind address, port, uvicorn target, and the
// timing knobs for startup and shutdown. URL derivation for the web UI
// lives here as well, so every command computes it the same way.
package server
