// Package acquire turns an uploaded file or a video link into a single
// audio file inside a project directory.
//
// Uploads are moved into <base>/<project>/, where the project name is the
// normalized title. Video links are resolved through a MediaFetcher (yt-dlp
// by default): the title names the project and best audio is downloaded
// as WAV, then the directory is scanned for the .wav file.
package acquire
