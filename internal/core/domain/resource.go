// Package domain contains the core domain models for selection and
// dependency resolution of downloadable content.
package domain

import "go.trai.ch/zerr"

// ResourceType identifies the kind of downloadable content item.
type ResourceType string

const (
	// ResourceTypeMod is a game modification.
	ResourceTypeMod ResourceType = "mod"
	// ResourceTypeResourcePack is a resource pack.
	ResourceTypeResourcePack ResourceType = "resourcepack"
	// ResourceTypeTexturePack is a legacy texture pack.
	ResourceTypeTexturePack ResourceType = "texturepack"
	// ResourceTypeShaderPack is a shader pack.
	ResourceTypeShaderPack ResourceType = "shaderpack"
)

// ParseResourceType validates a raw string against the known resource types.
func ParseResourceType(raw string) (ResourceType, error) {
	switch ResourceType(raw) {
	case ResourceTypeMod, ResourceTypeResourcePack,
		ResourceTypeTexturePack, ResourceTypeShaderPack:
		return ResourceType(raw), nil
	default:
		return "", zerr.With(ErrUnknownResourceType, "resource_type", raw)
	}
}

// Package is a logical downloadable content item offered by a provider.
// Its display name doubles as the deduplication key for selections.
type Package struct {
	// AddonID is the provider-scoped identifier of the package.
	AddonID string

	// Name is the human-readable display name.
	Name string

	// Provider identifies which provider serves this package.
	Provider Provider

	// Type is the kind of content this package holds.
	Type ResourceType
}

// Version is one downloadable release of a Package.
type Version struct {
	// ID is the provider-scoped version identifier.
	ID string

	// FileName is the name of the downloadable file.
	FileName string

	// DownloadURL is where the file is fetched from.
	DownloadURL string

	// CustomPath is an optional install path override relative to the
	// destination root. Empty means the destination default.
	CustomPath string

	// RequiredIDs lists addon ids this version requires at runtime.
	RequiredIDs []string

	// RequiredBy lists addon ids of selections that pulled this version in
	// as a dependency. Filled by the resolver, consumed for plan provenance.
	RequiredBy []string

	// CurrentlySelected is true while this exact version is held by the
	// selection store. At most one version per package may carry it.
	CurrentlySelected bool
}

// Ref returns a value identifying this version of the given package.
func (v *Version) Ref(pack Package) VersionRef {
	return VersionRef{
		Provider:  pack.Provider,
		AddonID:   pack.AddonID,
		VersionID: v.ID,
	}
}

// VersionRef identifies a specific version of a specific package from a
// specific provider.
type VersionRef struct {
	Provider  Provider
	AddonID   string
	VersionID string
}

// PackDependency pairs a package with one of its versions. It is the unit
// the dependency resolver consumes and produces.
type PackDependency struct {
	Pack    Package
	Version *Version
}
