// SPDX-License-Identifier: MPL-2.0

// Package setalg implements set algebra over sorted, duplicate-free string
// slices.
//
// All operations use sorted-merge semantics and therefore require their inputs
// to be normalized (see Normalize). Results are always sorted and never alias
// the inputs. This package is a leaf dependency: it imports only the standard
// library.
package setalg
