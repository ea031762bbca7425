// Package config loads lintlayer configuration files and composes them into
// the inputs of a resolver.
//
// Settings (environment, output format, watch debounce) are layered with
// koanf: embedded defaults, then each configuration file, then LINTLAYER_*
// environment variables, then command line flags. Rule documents compose
// explicitly: base rules merge per rule name with later files winning,
// overrides are appended in file order, policies register into a single
// registry and ignore groups are appended.
package config
