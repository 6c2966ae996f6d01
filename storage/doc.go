// Package storage provides object storage abstractions with pluggable
// backends.
//
// # Backends
//
//   - storage/local: filesystem storage rooted at a base directory, where
//     transcription projects live
//   - storage/s3: Amazon S3 and S3-compatible storage, used as an export
//     destination
//
// Backends register themselves on import:
//
//	import _ "github.com/kbukum/scribekit/storage/s3"
//
//	dst, err := storage.New(ctx, storage.Config{
//	    Provider: "s3",
//	    Bucket:   "transcripts",
//	}, log)
package storage
