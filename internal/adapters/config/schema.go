package config

// configFile represents the structure of the loadout.yaml configuration file.
type configFile struct {
	Version      string                 `yaml:"version"`
	Destinations map[string]string      `yaml:"destinations"`
	Providers    map[string]providerDTO `yaml:"providers"`
}

// providerDTO represents a provider capability record in the configuration.
type providerDTO struct {
	DisplayName   string   `yaml:"displayName"`
	BaseURL       string   `yaml:"baseURL"`
	Enabled       bool     `yaml:"enabled"`
	ResourceTypes []string `yaml:"resourceTypes"`
}
