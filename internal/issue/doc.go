// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for the user. Issue is a catalog of Markdown help pages, rendered
// with glamour, keyed by the class of failure (unreadable input, malformed row,
// declined overwrite, failed write, bad configuration).
package issue
