// Package runner launches the backend server process.
//
// The default mode is fire-and-forget: Start spawns uvicorn and the
// launcher exits without supervising it. Attached mode (Wait) keeps the
// launcher in the foreground and forwards shutdown: terminate on
// cancellation, kill after the grace period.
package runner
