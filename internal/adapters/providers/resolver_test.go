package providers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.loadout.dev/loadout/internal/adapters/providers"
	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.loadout.dev/loadout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testProgress(ctrl *gomock.Controller) *mocks.MockProgressReporter {
	reporter := mocks.NewMockProgressReporter(ctrl)
	unit := mocks.NewMockProgressUnit(ctrl)
	unit.EXPECT().Done(gomock.Any()).AnyTimes()
	reporter.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.ProgressUnit) {
			return ctx, unit
		}).
		AnyTimes()
	return reporter
}

func directoryFor(baseURL string, enabled bool) *domain.ProviderDirectory {
	return domain.NewProviderDirectory(map[domain.Provider]domain.ProviderInfo{
		domain.ProviderModrinth: {
			DisplayName:   "Modrinth",
			BaseURL:       baseURL,
			Enabled:       enabled,
			ResourceTypes: []domain.ResourceType{domain.ResourceTypeMod},
		},
	})
}

func newTestResolver(t *testing.T, handler http.Handler, enabled bool) (*providers.Resolver, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ctrl := gomock.NewController(t)
	client := providers.NewClient(
		providers.WithHTTPClient(server.Client()),
		providers.WithMaxRetries(0),
	)
	t.Cleanup(client.Close)
	return providers.NewResolver(client, directoryFor(server.URL, enabled), testProgress(ctrl)), server
}

func sodiumSelection() domain.PackDependency {
	return domain.PackDependency{
		Pack: domain.Package{
			AddonID:  "AANobbMI",
			Name:     "Sodium",
			Provider: domain.ProviderModrinth,
			Type:     domain.ResourceTypeMod,
		},
		Version: &domain.Version{ID: "s1", RequiredIDs: []string{"P7dR8mSH"}},
	}
}

func TestResolver_ResolveModrinth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/project/P7dR8mSH", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"P7dR8mSH","title":"Fabric API"}`))
	})
	mux.HandleFunc("/project/P7dR8mSH/version", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{
			"id":"f1",
			"files":[
				{"url":"https://cdn.example/other.jar","filename":"other.jar","primary":false},
				{"url":"https://cdn.example/fabric-api.jar","filename":"fabric-api.jar","primary":true}
			],
			"dependencies":[
				{"project_id":"AANobbMI","dependency_type":"required"},
				{"project_id":"optional-id","dependency_type":"optional"}
			]
		}]`))
	})

	resolver, _ := newTestResolver(t, mux, true)

	outcome := resolver.Resolve(context.Background(), []domain.PackDependency{sodiumSelection()})

	if outcome.Status != domain.ResolutionSucceeded {
		t.Fatalf("Expected success, got %+v", outcome)
	}
	if len(outcome.Dependencies) != 1 {
		t.Fatalf("Expected 1 dependency, got %d", len(outcome.Dependencies))
	}

	dep := outcome.Dependencies[0]
	if dep.Pack.Name != "Fabric API" || dep.Pack.AddonID != "P7dR8mSH" {
		t.Errorf("Unexpected package: %+v", dep.Pack)
	}
	if dep.Version.FileName != "fabric-api.jar" ||
		dep.Version.DownloadURL != "https://cdn.example/fabric-api.jar" {
		t.Errorf("Expected the primary file, got %+v", dep.Version)
	}
	if len(dep.Version.RequiredBy) != 1 || dep.Version.RequiredBy[0] != "AANobbMI" {
		t.Errorf("Unexpected required-by ids: %v", dep.Version.RequiredBy)
	}
	// The required dependency back on Sodium is already selected and must
	// not be walked again.
	if len(outcome.Warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", outcome.Warnings)
	}
}

func TestResolver_ResolveMissingDependencyWarns(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	resolver, _ := newTestResolver(t, mux, true)

	outcome := resolver.Resolve(context.Background(), []domain.PackDependency{sodiumSelection()})

	if outcome.Status != domain.ResolutionSucceeded {
		t.Fatalf("Expected success with warnings, got %+v", outcome)
	}
	if len(outcome.Dependencies) != 0 {
		t.Errorf("Expected no dependencies, got %v", outcome.Dependencies)
	}
	if len(outcome.Warnings) != 1 ||
		outcome.Warnings[0] != "required dependency P7dR8mSH was not found on Modrinth" {
		t.Errorf("Unexpected warnings: %v", outcome.Warnings)
	}
}

func TestResolver_ResolveDisabledProviderWarns(t *testing.T) {
	resolver, _ := newTestResolver(t, http.NotFoundHandler(), false)

	outcome := resolver.Resolve(context.Background(), []domain.PackDependency{sodiumSelection()})

	if outcome.Status != domain.ResolutionSucceeded {
		t.Fatalf("Expected success with warnings, got %+v", outcome)
	}
	if len(outcome.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %v", outcome.Warnings)
	}
}

func TestResolver_ResolveServerErrorFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	resolver, _ := newTestResolver(t, mux, true)

	outcome := resolver.Resolve(context.Background(), []domain.PackDependency{sodiumSelection()})

	if outcome.Status != domain.ResolutionFailed {
		t.Fatalf("Expected failure, got %+v", outcome)
	}
	if outcome.Reason == "" {
		t.Error("Expected a failure reason")
	}
}

func TestResolver_ResolveCancelled(t *testing.T) {
	resolver, _ := newTestResolver(t, http.NotFoundHandler(), true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := resolver.Resolve(ctx, []domain.PackDependency{sodiumSelection()})

	if !outcome.IsCancelled() {
		t.Fatalf("Expected cancelled, got %+v", outcome)
	}
	if len(outcome.Dependencies) != 0 {
		t.Error("Expected a cancelled run to contribute nothing")
	}
}

func TestResolver_Lookup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/project/AANobbMI", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"AANobbMI","title":"Sodium"}`))
	})
	mux.HandleFunc("/project/AANobbMI/version", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{
			"id":"s1",
			"files":[{"url":"https://cdn.example/sodium.jar","filename":"sodium.jar","primary":true}],
			"dependencies":[{"project_id":"P7dR8mSH","dependency_type":"required"}]
		}]`))
	})

	resolver, _ := newTestResolver(t, mux, true)

	dep, err := resolver.Lookup(context.Background(), domain.ProviderModrinth, domain.ResourceTypeMod, "AANobbMI")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if dep.Pack.Name != "Sodium" || dep.Pack.Provider != domain.ProviderModrinth {
		t.Errorf("Unexpected package: %+v", dep.Pack)
	}
	if dep.Version.ID != "s1" || dep.Version.FileName != "sodium.jar" {
		t.Errorf("Unexpected version: %+v", dep.Version)
	}
	if len(dep.Version.RequiredIDs) != 1 || dep.Version.RequiredIDs[0] != "P7dR8mSH" {
		t.Errorf("Unexpected requirements: %v", dep.Version.RequiredIDs)
	}
}

func TestResolver_LookupMissing(t *testing.T) {
	resolver, _ := newTestResolver(t, http.NotFoundHandler(), true)

	_, err := resolver.Lookup(context.Background(), domain.ProviderModrinth, domain.ResourceTypeMod, "nope")
	if !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got: %v", err)
	}
}

func TestResolver_LookupDisabledProvider(t *testing.T) {
	resolver, _ := newTestResolver(t, http.NotFoundHandler(), false)

	_, err := resolver.Lookup(context.Background(), domain.ProviderModrinth, domain.ResourceTypeMod, "AANobbMI")
	if err == nil {
		t.Fatal("Expected an error for a disabled provider")
	}
}

func TestResolver_LookupUnknownProvider(t *testing.T) {
	resolver, _ := newTestResolver(t, http.NotFoundHandler(), true)

	_, err := resolver.Lookup(context.Background(), "nowhere", domain.ResourceTypeMod, "AANobbMI")
	if !errors.Is(err, domain.ErrUnknownProvider) {
		t.Fatalf("Expected ErrUnknownProvider, got: %v", err)
	}
}

func TestResolver_LookupUnsupportedType(t *testing.T) {
	resolver, _ := newTestResolver(t, http.NotFoundHandler(), true)

	_, err := resolver.Lookup(context.Background(), domain.ProviderModrinth, domain.ResourceTypeShaderPack, "AANobbMI")
	if err == nil {
		t.Fatal("Expected an error for an unsupported resource type")
	}
}
