// SPDX-License-Identifier: MPL-2.0

// Package module loads the module table: one delimited row per module, the
// first field naming the module and the remaining fields listing its members.
//
// Member sets are normalized on load (sorted, deduplicated, empty tokens
// dropped) so the comparison code can rely on sorted-merge set algebra.
package module
