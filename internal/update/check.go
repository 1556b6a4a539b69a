// Package update performs a best-effort check for a newer relkit release.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/castlerow/relkit/internal/messages"
)

// Repo identifies the GitHub repository used for release checks.
const Repo = "castlerow/relkit"

// EnvNoNetwork disables the update check entirely when set.
const EnvNoNetwork = "RELKIT_NO_NETWORK"

var latestReleaseURL = "https://api.github.com/repos/" + Repo + "/releases/latest"
var httpClient = &http.Client{Timeout: 10 * time.Second}
var retryDelay = 250 * time.Millisecond

// RateLimitError indicates GitHub's API rate limit was hit. Callers should
// treat this as a best-effort failure and keep output quiet.
type RateLimitError struct {
	StatusCode int
	Status     string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github api rate limit exceeded (%s)", e.Status)
}

// IsRateLimitError reports whether err represents a rate-limit condition.
func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// CheckResult captures the latest release check outcome.
type CheckResult struct {
	Current      string
	Latest       string
	Outdated     bool
	CurrentIsDev bool
}

// Check fetches the latest release tag and compares it to currentVersion.
func Check(ctx context.Context, currentVersion string) (CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	current := strings.TrimPrefix(strings.TrimSpace(currentVersion), "v")
	isDev := current == "" || current == "dev"
	if !isDev {
		if _, err := parseSemver(current); err != nil {
			return CheckResult{}, err
		}
	}

	latest, err := fetchLatest(ctx)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{Current: current, Latest: latest, CurrentIsDev: isDev}
	if !isDev {
		cur, err := parseSemver(current)
		if err != nil {
			return CheckResult{}, err
		}
		lat, err := parseSemver(latest)
		if err != nil {
			return CheckResult{}, err
		}
		result.Outdated = compare(cur, lat) < 0
	}
	return result, nil
}

type latestReleaseResponse struct {
	TagName string `json:"tag_name"`
}

// fetchLatest returns the normalized latest release tag, retrying once on
// transient network or 5xx failures.
func fetchLatest(ctx context.Context) (string, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
		if err != nil {
			return "", fmt.Errorf(messages.UpdateFetchLatestFmt, err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("User-Agent", "relkit")

		resp, err := httpClient.Do(req)
		if err != nil {
			if shouldRetry(err, 0, attempt) {
				time.Sleep(retryDelay)
				continue
			}
			return "", fmt.Errorf(messages.UpdateFetchLatestFmt, err)
		}

		tag, retryable, err := decodeLatest(resp)
		if err != nil {
			if retryable && shouldRetry(nil, resp.StatusCode, attempt) {
				time.Sleep(retryDelay)
				continue
			}
			return "", err
		}
		return tag, nil
	}
}

func decodeLatest(resp *http.Response) (tag string, retryable bool, err error) {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if rl := rateLimitErrorFromResponse(resp); rl != nil {
			return "", false, rl
		}
		return "", true, fmt.Errorf(messages.UpdateUnexpectedStatusFmt, resp.Status)
	}

	var payload latestReleaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false, fmt.Errorf(messages.UpdateDecodeResponseFmt, err)
	}
	trimmed := strings.TrimPrefix(strings.TrimSpace(payload.TagName), "v")
	if trimmed == "" {
		return "", false, errors.New(messages.UpdateEmptyTag)
	}
	if _, err := parseSemver(trimmed); err != nil {
		return "", false, err
	}
	return trimmed, false, nil
}

func rateLimitErrorFromResponse(resp *http.Response) *RateLimitError {
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	// GitHub returns 403 for unauthenticated exhaustion; confirm via headers.
	if resp.StatusCode == http.StatusForbidden {
		remaining := strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining"))
		if n, err := strconv.Atoi(remaining); err == nil && n == 0 {
			return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
		}
	}
	return nil
}

func shouldRetry(err error, statusCode int, attempt int) bool {
	if attempt >= 1 {
		return false
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		var netErr net.Error
		return errors.As(err, &netErr)
	}
	return statusCode >= 500 && statusCode <= 599
}

// parseSemver parses an X.Y.Z version into its numeric parts.
func parseSemver(v string) ([3]int, error) {
	var parts [3]int
	fields := strings.Split(v, ".")
	if len(fields) != 3 {
		return parts, fmt.Errorf(messages.UpdateInvalidVersionFmt, v)
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return parts, fmt.Errorf(messages.UpdateInvalidVersionFmt, v)
		}
		parts[i] = n
	}
	return parts, nil
}

func compare(a, b [3]int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
