// Package debug holds precondition checks for the geometry core.
// They panic only in builds tagged slabdebug; otherwise they compile to no-ops
// and violated preconditions give unspecified but finite results.
package debug
