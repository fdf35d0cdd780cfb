package providers

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
)

// modrinthBackend speaks the Modrinth v2 API.
type modrinthBackend struct {
	client *Client
}

type modrinthProject struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type modrinthVersion struct {
	ID    string `json:"id"`
	Files []struct {
		URL      string `json:"url"`
		Filename string `json:"filename"`
		Primary  bool   `json:"primary"`
	} `json:"files"`
	Dependencies []struct {
		ProjectID      string `json:"project_id"`
		DependencyType string `json:"dependency_type"`
	} `json:"dependencies"`
}

func (b *modrinthBackend) Project(ctx context.Context, baseURL, addonID string) (remoteProject, error) {
	var proj modrinthProject
	url := fmt.Sprintf("%s/project/%s", baseURL, addonID)
	if err := b.client.GetJSON(ctx, "modrinth", url, &proj); err != nil {
		return remoteProject{}, err
	}
	return remoteProject{ID: proj.ID, Name: proj.Title}, nil
}

func (b *modrinthBackend) LatestVersion(ctx context.Context, baseURL, addonID string) (remoteVersion, error) {
	var versions []modrinthVersion
	url := fmt.Sprintf("%s/project/%s/version", baseURL, addonID)
	if err := b.client.GetJSON(ctx, "modrinth", url, &versions); err != nil {
		return remoteVersion{}, err
	}
	if len(versions) == 0 {
		return remoteVersion{}, zerr.With(ErrNotFound, "addon_id", addonID)
	}

	// Version lists come newest first.
	latest := versions[0]

	out := remoteVersion{ID: latest.ID}
	for _, f := range latest.Files {
		if out.FileName == "" || f.Primary {
			out.FileName = f.Filename
			out.URL = f.URL
		}
	}
	for _, dep := range latest.Dependencies {
		if dep.DependencyType == "required" && dep.ProjectID != "" {
			out.Requires = append(out.Requires, dep.ProjectID)
		}
	}
	return out, nil
}
