package integration

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"pull-request-stats/internal/config"
	"pull-request-stats/internal/repo"
	"pull-request-stats/internal/service"
	"pull-request-stats/internal/storage/githubapi"
)

// TestServer stands in for the GitHub API and wires the real client, repo
// and service layers against it.
type TestServer struct {
	API     *httptest.Server
	Service *service.ReportService
}

func NewTestServer(prLimit int, fixtures map[string]string) *TestServer {
	mux := http.NewServeMux()
	for path, body := range fixtures {
		payload := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(payload))
		})
	}

	api := httptest.NewServer(mux)

	client := githubapi.Init(config.GitHubConfig{
		Token:   "test-token",
		APIURL:  api.URL,
		Timeout: 5 * time.Second,
	})

	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	prRepo := repo.NewPullRequestRepo(client.GetClient(), "acme", "widgets")
	reportService := service.NewReportService(log, prRepo, prLimit)

	return &TestServer{
		API:     api,
		Service: reportService,
	}
}

func (s *TestServer) Close() {
	s.API.Close()
}
