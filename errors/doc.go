// Package errors provides the structured error type shared by every scribekit
// component. Each failure carries a machine-readable code that identifies where
// it came from, an optional upstream payload for diagnostics, and a process exit
// code used by the command line front end.
package errors
