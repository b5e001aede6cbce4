// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates configuration documents against an embedded CUE
// schema.
//
// A Schema is compiled once from the schema source and the name of its root
// definition. CUE documents are compiled, unified with the definition,
// validated and decoded into a generic map; documents that were decoded by
// another parser (TOML) are encoded into CUE and checked the same way, so
// every accepted format obeys one set of rules.
//
//	schema, err := cueutil.Compile(schemaSource, "#Config")
//	values, err := schema.DecodeFile(data, "config.cue")
//
// Errors carry the offending field path, e.g. "config.cue: log.level: ...".
package cueutil
