package providers

import (
	"context"
	"fmt"
	"strconv"

	"go.trai.ch/zerr"
)

// Relation types in the Flame file API.
const flameRelationRequired = 3

// flameBackend speaks the Flame (CurseForge) v1 API.
type flameBackend struct {
	client *Client
}

type flameMod struct {
	Data struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		LatestFiles []struct {
			ID           int64  `json:"id"`
			FileName     string `json:"fileName"`
			DownloadURL  string `json:"downloadUrl"`
			Dependencies []struct {
				ModID        int64 `json:"modId"`
				RelationType int   `json:"relationType"`
			} `json:"dependencies"`
		} `json:"latestFiles"`
	} `json:"data"`
}

func (b *flameBackend) fetch(ctx context.Context, baseURL, addonID string) (flameMod, error) {
	var mod flameMod
	url := fmt.Sprintf("%s/mods/%s", baseURL, addonID)
	if err := b.client.GetJSON(ctx, "flame", url, &mod); err != nil {
		return flameMod{}, err
	}
	return mod, nil
}

func (b *flameBackend) Project(ctx context.Context, baseURL, addonID string) (remoteProject, error) {
	mod, err := b.fetch(ctx, baseURL, addonID)
	if err != nil {
		return remoteProject{}, err
	}
	return remoteProject{
		ID:   strconv.FormatInt(mod.Data.ID, 10),
		Name: mod.Data.Name,
	}, nil
}

func (b *flameBackend) LatestVersion(ctx context.Context, baseURL, addonID string) (remoteVersion, error) {
	mod, err := b.fetch(ctx, baseURL, addonID)
	if err != nil {
		return remoteVersion{}, err
	}
	if len(mod.Data.LatestFiles) == 0 {
		return remoteVersion{}, zerr.With(ErrNotFound, "addon_id", addonID)
	}

	latest := mod.Data.LatestFiles[len(mod.Data.LatestFiles)-1]

	out := remoteVersion{
		ID:       strconv.FormatInt(latest.ID, 10),
		FileName: latest.FileName,
		URL:      latest.DownloadURL,
	}
	for _, dep := range latest.Dependencies {
		if dep.RelationType == flameRelationRequired {
			out.Requires = append(out.Requires, strconv.FormatInt(dep.ModID, 10))
		}
	}
	return out, nil
}
