package domain

import "go.trai.ch/zerr"

// Provider identifies a content provider such as Modrinth or Flame.
type Provider string

const (
	// ProviderModrinth is the Modrinth content platform.
	ProviderModrinth Provider = "modrinth"
	// ProviderFlame is the CurseForge ("Flame") content platform.
	ProviderFlame Provider = "flame"
)

// ProviderInfo describes a provider's capabilities as read-only configuration.
type ProviderInfo struct {
	// DisplayName is the human-readable provider name used on plan rows.
	DisplayName string

	// BaseURL is the root of the provider's HTTP API.
	BaseURL string

	// Enabled gates whether the provider may be used at all.
	Enabled bool

	// ResourceTypes lists the content kinds this provider serves.
	ResourceTypes []ResourceType
}

// Supports reports whether the provider serves the given resource type.
func (p ProviderInfo) Supports(rt ResourceType) bool {
	for _, t := range p.ResourceTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// ProviderDirectory is the process-wide read-only table of known providers.
// It is built once at startup from configuration and injected where needed.
type ProviderDirectory struct {
	providers map[Provider]ProviderInfo
}

// NewProviderDirectory creates a directory from the given provider table.
func NewProviderDirectory(providers map[Provider]ProviderInfo) *ProviderDirectory {
	copied := make(map[Provider]ProviderInfo, len(providers))
	for id, info := range providers {
		copied[id] = info
	}
	return &ProviderDirectory{providers: copied}
}

// Info returns the capability record for the given provider id.
func (d *ProviderDirectory) Info(id Provider) (ProviderInfo, error) {
	info, ok := d.providers[id]
	if !ok {
		return ProviderInfo{}, zerr.With(ErrUnknownProvider, "provider", string(id))
	}
	return info, nil
}

// DisplayName returns the human-readable name for a provider id. Unknown
// providers fall back to their raw id so plan rendering never fails.
func (d *ProviderDirectory) DisplayName(id Provider) string {
	if info, ok := d.providers[id]; ok {
		return info.DisplayName
	}
	return string(id)
}

// Enabled reports whether the provider is known and enabled.
func (d *ProviderDirectory) Enabled(id Provider) bool {
	info, ok := d.providers[id]
	return ok && info.Enabled
}
