// Package process runs external tools such as yt-dlp and the whisper CLI.
//
// Run captures stdout and stderr, places the child in its own process group
// and, on context cancellation, sends SIGTERM to the group before escalating
// to SIGKILL after the grace period.
package process
