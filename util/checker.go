package util

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dixieflatline76/Stencil/config"
	"github.com/google/go-github/v63/github"
	"golang.org/x/mod/semver"
)

const githubOwner = "dixieflatline76"

// UpdateInfo is the outcome of an update check.
type UpdateInfo struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
	Notes          string
}

// CheckForUpdates compares config.AppVersion with the latest published
// release. A nil client uses http.DefaultClient.
func CheckForUpdates(ctx context.Context, client *http.Client) (*UpdateInfo, error) {
	gh := github.NewClient(client)
	release, _, err := gh.Repositories.GetLatestRelease(ctx, githubOwner, config.AppName)
	if err != nil {
		return nil, fmt.Errorf("fetching latest release: %w", err)
	}

	info := &UpdateInfo{
		CurrentVersion: canonicalVersion(config.AppVersion),
		LatestVersion:  canonicalVersion(release.GetTagName()),
		ReleaseURL:     release.GetHTMLURL(),
		Notes:          release.GetBody(),
	}
	if !semver.IsValid(info.LatestVersion) {
		return nil, fmt.Errorf("release tag %q is not a version", release.GetTagName())
	}
	info.Available = semver.Compare(info.LatestVersion, info.CurrentVersion) > 0
	return info, nil
}

func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
