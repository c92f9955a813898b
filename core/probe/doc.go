// Package probe implements a bounded readiness poll against the
// backend's UI URL. It is opt-in: the default launch flow keeps the
// plain startup delay and only the status command (or --wait-ready)
// uses the probe.
package probe
