// Package config loads service configuration with viper.
//
// LoadConfig looks for a config.yml next to the binary's cmd directory or in
// the working directory, then a .env file, and finally lets environment
// variables override any key: ASSEMBLYAI_API_KEY lands on assemblyai.api_key,
// WHISPER_MODEL on whisper.model.
//
//	var cfg AppConfig
//	if err := config.LoadConfig("scribe", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
package config
