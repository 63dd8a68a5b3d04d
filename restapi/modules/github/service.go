// Package github provides the repository star operations backed by the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	gh "github.com/google/go-github/v74/github"
	"github.com/ortelius/ghwire/util"
	"go.uber.org/zap"
)

// ClientConfig configures the GitHub API client.
type ClientConfig struct {
	// Token is a personal access or installation token. Star and unstar need one.
	Token string
	// APIURL overrides the API root, e.g. https://ghe.example.com/api/v3.
	APIURL  string
	Timeout time.Duration
}

// NewClient returns a go-github client for cfg.
func NewClient(cfg ClientConfig) (*gh.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := gh.NewClient(&http.Client{Timeout: timeout})
	if cfg.Token != "" {
		client = client.WithAuthToken(cfg.Token)
	}
	if cfg.APIURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.APIURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", cfg.APIURL, err)
		}
		client.BaseURL = base
	}
	return client, nil
}

// ActivityClient is the part of the GitHub activity API used for stars.
// *gh.ActivityService implements it.
type ActivityClient interface {
	IsStarred(ctx context.Context, owner, repo string) (bool, *gh.Response, error)
	Star(ctx context.Context, owner, repo string) (*gh.Response, error)
	Unstar(ctx context.Context, owner, repo string) (*gh.Response, error)
}

// Stars stars and unstars repositories for the authenticated user. Calls that
// fail with a 5xx or transport error are retried.
type Stars struct {
	activity   ActivityClient
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

// NewStars returns a Stars over activity.
func NewStars(activity ActivityClient, logger *zap.Logger) *Stars {
	return &Stars{activity: activity, logger: logger, newBackOff: defaultBackOff}
}

// WithBackOff replaces the retry policy.
func (s *Stars) WithBackOff(newBackOff func() backoff.BackOff) *Stars {
	s.newBackOff = newBackOff
	return s
}

func defaultBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = time.Second
	bo.MaxElapsedTime = 5 * time.Second
	return backoff.WithMaxRetries(bo, 3)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	status := UpstreamStatus(err)
	return status == 0 || status >= http.StatusInternalServerError
}

func (s *Stars) call(ctx context.Context, op string, repo util.RepoName, fn func() error) error {
	return backoff.RetryNotify(func() error {
		err := fn()
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(s.newBackOff(), ctx), func(err error, wait time.Duration) {
		s.logger.Warn("Retrying GitHub call",
			zap.String("op", op),
			zap.String("repository", repo.String()),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
}

// IsStarred reports whether the authenticated user has starred repo. A repository
// that is not starred (404 upstream) is not an error.
func (s *Stars) IsStarred(ctx context.Context, repo util.RepoName) (bool, error) {
	var starred bool
	err := s.call(ctx, "is_starred", repo, func() error {
		var err error
		starred, _, err = s.activity.IsStarred(ctx, repo.Owner, repo.Name)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to check star on %s: %w", repo, err)
	}
	return starred, nil
}

// Star stars repo. Starring an already starred repository succeeds.
func (s *Stars) Star(ctx context.Context, repo util.RepoName) error {
	err := s.call(ctx, "star", repo, func() error {
		_, err := s.activity.Star(ctx, repo.Owner, repo.Name)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to star %s: %w", repo, err)
	}
	s.logger.Info("Starred repository", zap.String("repository", repo.String()))
	return nil
}

// Unstar removes the star from repo.
func (s *Stars) Unstar(ctx context.Context, repo util.RepoName) error {
	err := s.call(ctx, "unstar", repo, func() error {
		_, err := s.activity.Unstar(ctx, repo.Owner, repo.Name)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to unstar %s: %w", repo, err)
	}
	s.logger.Info("Unstarred repository", zap.String("repository", repo.String()))
	return nil
}

// Toggle stars repo if it is not starred and unstars it otherwise. It returns
// the new state.
func (s *Stars) Toggle(ctx context.Context, repo util.RepoName) (bool, error) {
	starred, err := s.IsStarred(ctx, repo)
	if err != nil {
		return false, err
	}
	if starred {
		return false, s.Unstar(ctx, repo)
	}
	return true, s.Star(ctx, repo)
}

// UpstreamStatus returns the HTTP status of a GitHub API error, or 0 when err did
// not come from a GitHub response.
func UpstreamStatus(err error) int {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return http.StatusTooManyRequests
	}
	// Secondary rate limits arrive as 403 but are reported as 429.
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return http.StatusTooManyRequests
	}
	return 0
}
