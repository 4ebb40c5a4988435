// Package kindling holds shared metadata for the kindling CLI.
package kindling

// Version is the current release version.
const Version = "0.3.0"
