package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"pull-request-stats/internal/config"
)

// Client wraps the GitHub API client used by the repo layer.
type Client struct {
	gh *github.Client
}

// Init builds an authenticated API client. An empty token yields an
// unauthenticated client; the API itself rejects it on the first call.
func Init(cfg config.GitHubConfig) *Client {
	const op = "storage.githubapi.Init"

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = cfg.Timeout
	}

	gh := github.NewClient(httpClient)

	if cfg.APIURL != "" {
		base, err := url.Parse(cfg.APIURL)
		if err != nil {
			panic(fmt.Sprintf("%s: invalid api url %q: %v", op, cfg.APIURL, err))
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		gh.BaseURL = base
	}

	return &Client{gh: gh}
}

func (c *Client) GetClient() *github.Client {
	return c.gh
}
