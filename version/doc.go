// Package version reports what build of scribe is running.
//
// Release builds inject values with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/scribekit/version.Version=1.2.0" ./cmd/scribe
//
// Otherwise the VCS stamps recorded by the Go toolchain are used.
package version
