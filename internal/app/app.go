package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"pull-request-stats/internal/apperrors"
	"pull-request-stats/internal/config"
	"pull-request-stats/internal/output"
	"pull-request-stats/internal/repo"
	"pull-request-stats/internal/service"
	"pull-request-stats/internal/storage/githubapi"
)

type App struct {
	log           *slog.Logger
	opts          *config.Options
	reportService *service.ReportService
	renderer      output.Renderer
	out           io.Writer
}

func MustNew(log *slog.Logger, cfg *config.Config, opts *config.Options) *App {
	client := githubapi.Init(cfg.GitHub)

	prRepo := repo.NewPullRequestRepo(client.GetClient(), opts.Owner, opts.Repo)
	reportService := service.NewReportService(log, prRepo, opts.PRLimit)

	return &App{
		log:           log,
		opts:          opts,
		reportService: reportService,
		renderer:      output.NewRenderer(opts.Output),
		out:           os.Stdout,
	}
}

// Run executes the selected report once and writes it to stdout. An empty
// result set is reported as "no data" and is not a failure.
func (a *App) Run(ctx context.Context) error {
	const op = "app.Run"

	a.log.With(slog.String("op", op)).Info("starting report",
		slog.String("mode", string(a.opts.Mode)),
		slog.String("repo", a.opts.Owner+"/"+a.opts.Repo))

	switch a.opts.Mode {
	case config.AnalyzeMerged:
		report, err := a.reportService.MergedReport(ctx, a.opts.IndividualStats)
		if err != nil {
			return a.finish(op, err)
		}
		return a.renderer.MergedReport(a.out, report)
	case config.AnalyzeOpen:
		report, err := a.reportService.OpenReport(ctx)
		if err != nil {
			return a.finish(op, err)
		}
		return a.renderer.OpenReport(a.out, report)
	default:
		return fmt.Errorf("%s: %w", op, apperrors.ErrUnknownAnalyzeMode)
	}
}

func (a *App) finish(op string, err error) error {
	if errors.Is(err, apperrors.ErrNoData) {
		_, writeErr := fmt.Fprintln(a.out, "No pull requests to analyze.")
		return writeErr
	}
	return fmt.Errorf("%s: %w", op, err)
}
