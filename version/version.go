// Package version holds the build version reported by the health route and
// the CLI.
package version

var Version = "0.4.0"
