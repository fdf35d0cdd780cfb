package domain_test

import (
	"errors"
	"testing"

	"go.loadout.dev/loadout/internal/core/domain"
)

func TestParseResourceType(t *testing.T) {
	for _, raw := range []string{"mod", "resourcepack", "texturepack", "shaderpack"} {
		rt, err := domain.ParseResourceType(raw)
		if err != nil {
			t.Errorf("ParseResourceType(%q) failed: %v", raw, err)
		}
		if string(rt) != raw {
			t.Errorf("ParseResourceType(%q) = %q", raw, rt)
		}
	}

	_, err := domain.ParseResourceType("datapack")
	if !errors.Is(err, domain.ErrUnknownResourceType) {
		t.Errorf("Expected ErrUnknownResourceType, got: %v", err)
	}
}

func TestProviderDirectory(t *testing.T) {
	directory := domain.NewProviderDirectory(map[domain.Provider]domain.ProviderInfo{
		domain.ProviderModrinth: {
			DisplayName:   "Modrinth",
			Enabled:       true,
			ResourceTypes: []domain.ResourceType{domain.ResourceTypeMod},
		},
	})

	info, err := directory.Info(domain.ProviderModrinth)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if !info.Supports(domain.ResourceTypeMod) || info.Supports(domain.ResourceTypeShaderPack) {
		t.Errorf("Unexpected capability set: %+v", info)
	}

	if _, err := directory.Info("nowhere"); !errors.Is(err, domain.ErrUnknownProvider) {
		t.Errorf("Expected ErrUnknownProvider, got: %v", err)
	}
	if name := directory.DisplayName("nowhere"); name != "nowhere" {
		t.Errorf("Expected raw id fallback, got %q", name)
	}
	if directory.Enabled("nowhere") {
		t.Error("Expected unknown providers to be disabled")
	}
}

func TestVersionRef(t *testing.T) {
	pack := domain.Package{AddonID: "AANobbMI", Provider: domain.ProviderModrinth}
	version := &domain.Version{ID: "s1"}

	ref := version.Ref(pack)
	want := domain.VersionRef{Provider: domain.ProviderModrinth, AddonID: "AANobbMI", VersionID: "s1"}
	if ref != want {
		t.Errorf("Unexpected ref: %+v", ref)
	}
}

func TestResolutionOutcome(t *testing.T) {
	if !domain.Cancelled().IsCancelled() {
		t.Error("Expected Cancelled to report cancelled")
	}
	if !domain.Failed("boom").IsFailed() {
		t.Error("Expected Failed to report failed")
	}

	ok := domain.Succeeded(nil, []string{"heads up"})
	if ok.IsCancelled() || ok.IsFailed() {
		t.Error("Expected a successful outcome")
	}
	if len(ok.Warnings) != 1 {
		t.Errorf("Expected warnings to carry through, got %v", ok.Warnings)
	}
}
