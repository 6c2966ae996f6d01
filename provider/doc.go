// Package provider implements a generic registry for swappable backends.
//
// Factories are registered by name and built lazily on the first Get; the
// instance is then reused until Close. Providers may opt into Initializable
// and Closeable.
//
//	reg := provider.NewRegistry[transcription.Provider]()
//	reg.RegisterFactory("whisper", func() (transcription.Provider, error) {
//	    return whisper.New(cfg, loader), nil
//	})
//	p, err := reg.Get(ctx, "whisper")
package provider
