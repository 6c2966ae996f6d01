package logger

// Get returns the logger for a component such as "acquire" or "assemblyai":
// the global logger tagged with the component name.
func Get(name string) *Logger {
	return GetGlobalLogger().WithComponent(name)
}
