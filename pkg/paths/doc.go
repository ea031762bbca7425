// Package paths locates the project root, the configuration files and the
// XDG directories lintlayer uses, and turns file system paths into the
// root-relative slash paths the resolver matches against.
//
// # Environment Variables
//
//   - LINTLAYER_ROOT: project root (default: git top level, then the working directory)
//   - LINTLAYER_CONFIG_DIR: user configuration directory (default: $XDG_CONFIG_HOME/lintlayer)
//
// # Configuration discovery
//
// Explicit files win. Otherwise the first of .lintlayer.toml, .lintlayer.yaml
// and .lintlayer.yml found in the project root is used, falling back to
// config.toml in the user configuration directory.
package paths
