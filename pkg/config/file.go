package config

// Config is the top-level configuration
type Config struct {
	Verifier *VerifierConfig `json:"verifier" yaml:"verifier"`
	App      *AppConfig      `json:"app" yaml:"app"`
}

// getDefaultConfig returns a configuration where every section holds its defaults
func getDefaultConfig() *Config {
	return &Config{
		Verifier: NewVerifierConfig(),
		App:      NewAppConfig(),
	}
}

// GetVerifierConfig returns the verifier section, falling back to defaults
func (c *Config) GetVerifierConfig() *VerifierConfig {
	if c.Verifier != nil {
		return c.Verifier
	}
	return NewVerifierConfig()
}

// GetAppConfig returns the app section, falling back to defaults
func (c *Config) GetAppConfig() *AppConfig {
	if c.App != nil {
		return c.App
	}
	return NewAppConfig()
}
