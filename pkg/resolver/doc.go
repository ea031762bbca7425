// Package resolver turns a base rule set and an ordered list of file scoped
// overrides into the effective rule set for a single file.
//
// # Resolution
//
// Resolution starts from a copy of the base rules and walks the overrides in
// declaration order. An override applies when the file matches at least one
// of its include patterns and none of its exclude patterns; its rules then
// replace whatever setting the same rule names had so far. The last applying
// override wins for every rule it names.
//
// # Snapshots
//
// A Resolver is immutable once Load returns. Hosts that reload configuration
// keep the current Resolver in a Holder and swap it atomically; readers keep
// resolving against the snapshot they loaded.
package resolver
