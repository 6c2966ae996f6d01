package transcription

import (
	"strings"

	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/provider"
)

// Engine names.
const (
	EngineWhisper    = "whisper"
	EngineAssemblyAI = "assemblyai"
)

// Engines returns the engine names in menu order.
func Engines() []string {
	return []string{EngineWhisper, EngineAssemblyAI}
}

// ParseEngine validates an engine name.
func ParseEngine(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, e := range Engines() {
		if s == e {
			return e, nil
		}
	}
	return "", errors.InvalidInput("engine", "unknown engine "+s)
}

// RequiresCredential reports whether engine needs an API key.
func RequiresCredential(engine string) bool {
	return engine == EngineAssemblyAI
}

// NewRegistry creates a new provider registry for transcription backends.
func NewRegistry() *provider.Registry[Provider] {
	return provider.NewRegistry[Provider]()
}
