package update

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	githubAPIURL    = "https://api.github.com/repos/sevenplus-app/sevenplus-cli/releases/latest"
	userAgent       = "sevenplus-cli"
	downloadBaseURL = "https://github.com/sevenplus-app/sevenplus-cli/releases/download"
)

// release is the subset of the GitHub release payload we read.
type release struct {
	TagName string `json:"tag_name"`
}

// GetLatestVersion fetches the latest released version tag from GitHub.
func GetLatestVersion() (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	req, err := http.NewRequest(http.MethodGet, githubAPIURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var rel release
	if err := json.Unmarshal(body, &rel); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return rel.TagName, nil
}

// CheckForUpdate reports whether a newer version than currentVersion is
// available, and which.
func CheckForUpdate(currentVersion string) (bool, string, error) {
	latestVersion, err := GetLatestVersion()
	if err != nil {
		return false, "", err
	}
	return isNewer(currentVersion, latestVersion), latestVersion, nil
}

// isNewer returns true if latest differs from current. Dev builds always
// report an available update.
func isNewer(current, latest string) bool {
	current = strings.TrimPrefix(current, "v")
	latest = strings.TrimPrefix(latest, "v")
	if current == "dev" {
		return true
	}
	return current != latest
}

// PrintUpdateNotification prints a hint on stderr when an update exists.
// Errors are ignored; the check is best-effort.
func PrintUpdateNotification(currentVersion string) {
	updateAvailable, latestVersion, err := CheckForUpdate(currentVersion)
	if err != nil {
		return
	}
	if updateAvailable {
		fmt.Fprintf(os.Stderr, "New version %s -> %s. Run: sevenplus update\n\n", currentVersion, latestVersion)
	}
}
