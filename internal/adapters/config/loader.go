// Package config provides the configuration loader for loadout.
package config

import (
	"os"

	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Config is the parsed, validated startup configuration: the read-only
// provider directory plus the destination directory per resource type.
type Config struct {
	Providers    *domain.ProviderDirectory
	Destinations map[domain.ResourceType]ports.Destination
}

// Destination returns the download destination for the given resource type,
// falling back to the current directory when unconfigured.
func (c *Config) Destination(rt domain.ResourceType) ports.Destination {
	if dest, ok := c.Destinations[rt]; ok {
		return dest
	}
	return ports.Destination{Dir: "."}
}

// Load reads a configuration file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse decodes and validates raw YAML configuration.
func Parse(data []byte) (*Config, error) {
	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	providers := make(map[domain.Provider]domain.ProviderInfo, len(file.Providers))
	for id, dto := range file.Providers {
		types, err := parseResourceTypes(dto.ResourceTypes)
		if err != nil {
			return nil, zerr.With(err, "provider", id)
		}

		name := dto.DisplayName
		if name == "" {
			name = id
		}

		providers[domain.Provider(id)] = domain.ProviderInfo{
			DisplayName:   name,
			BaseURL:       dto.BaseURL,
			Enabled:       dto.Enabled,
			ResourceTypes: types,
		}
	}

	destinations := make(map[domain.ResourceType]ports.Destination, len(file.Destinations))
	for rt, dir := range file.Destinations {
		parsed, err := domain.ParseResourceType(rt)
		if err != nil {
			return nil, err
		}
		destinations[parsed] = ports.Destination{Dir: dir}
	}

	return &Config{
		Providers:    domain.NewProviderDirectory(providers),
		Destinations: destinations,
	}, nil
}

func parseResourceTypes(raw []string) ([]domain.ResourceType, error) {
	types := make([]domain.ResourceType, 0, len(raw))
	for _, r := range raw {
		rt, err := domain.ParseResourceType(r)
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, nil
}
