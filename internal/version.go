// Package internal provides the release version shared by all evoq
// executables.
package internal

// Version is the current release version of the evoq tools.
const Version = "0.1.0"
