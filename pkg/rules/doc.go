// Package rules defines the value types a lint configuration is made of.
//
// A rule is an opaque name mapped to a Setting: a Severity (off, warn, error)
// and an ordered options payload the rule implementation interprets. This
// package never looks inside the payload; equality and merging always operate
// on the whole Setting.
//
// # Setting Forms
//
// Settings are accepted in the shapes lint configurations commonly use:
//
//	no-console = "warn"                                   # severity only
//	eqeqeq = 2                                            # numeric severity
//	quotes = ["error", "single"]                          # severity followed by options
//	max-lines = { severity = "error", options = [300] }   # explicit map
//
// Severities are "off", "warn" and "error" (case-insensitive) or 0, 1 and 2.
//
// # RuleSet
//
// A RuleSet maps rule names to settings. It is used both for the base
// configuration, for the delta of each override and for the effective
// configuration produced for a single file.
package rules
