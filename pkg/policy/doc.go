// Package policy holds the named policy fragments shared between overrides.
//
// A fragment is registered once under a symbolic key and referenced from any
// number of rule option payloads. References are plain values embedded in the
// payload:
//
//	Ref{Key: "no-moment"}                              -> the fragment itself
//	Selection{Keys: []string{"no-moment", "no-antd"}}  -> list of fragments
//	Selection{All: true, Except: []string{"no-antd"}}  -> every fragment but one
//
// In configuration files the same references are written as maps:
//
//	{ "$policy" = "no-moment" }
//	{ "$policies" = ["no-moment", "no-antd"] }
//	{ "$policies" = "*", "$except" = ["no-antd"] }
//
// Expand substitutes every reference with registry values so consumers never
// see a reference. Selections keep registration order, which makes the
// expansion deterministic.
package policy
