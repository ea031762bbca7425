// Package testutil provides utilities for testing lintlayer components.
//
// Key components:
//   - TestEnvironment: a project root, user config dir and state dir with
//     LINTLAYER_* variables cleared, on an in-memory or a real filesystem
//   - FileTree: declarative file setup
//
// Usage guidelines:
//   - prefer EnvMemoryOnly; only tests that need fsnotify or os.* use EnvIsolated
//   - define configuration inline, not in external files
package testutil
