package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pull-request-stats/internal/domain/models"
	"pull-request-stats/internal/lib/logger/sl"
)

type ReportService struct {
	log     *slog.Logger
	prRepo  PullRequestProvider
	prLimit int
}

type PullRequestProvider interface {
	GetMergedPullRequests(ctx context.Context, limit int) ([]models.PullRequest, error)
	GetOpenPullRequests(ctx context.Context, limit int) ([]models.PullRequest, error)
	GetContributors(ctx context.Context) ([]string, error)
}

func NewReportService(
	log *slog.Logger,
	prRepo PullRequestProvider,
	prLimit int) *ReportService {
	return &ReportService{
		log:     log,
		prRepo:  prRepo,
		prLimit: prLimit,
	}
}

// MergedReport fetches merged PRs and reduces them to duration statistics,
// optionally with per-contributor review counts.
func (s *ReportService) MergedReport(ctx context.Context, individualStats bool) (*models.MergedReport, error) {
	const op = "service.report.MergedReport"

	log := s.log.With(slog.String("op", op))

	log.Info("building merged-PR report", slog.Int("pr_limit", s.prLimit))

	prs, err := s.prRepo.GetMergedPullRequests(ctx, s.prLimit)
	if err != nil {
		log.Error("failed to fetch merged pull requests", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	report, err := SummarizeDurations(prs)
	if err != nil {
		log.Warn("nothing to aggregate", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if individualStats {
		contributors, err := s.prRepo.GetContributors(ctx)
		if err != nil {
			log.Error("failed to fetch contributors", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		report.Contributors = TallyContributors(contributors, prs)
	}

	log.Info("merged-PR report built",
		slog.Int("pr_count", report.PRCount),
		slog.Int("reviewed_pr_count", report.ReviewedPRCount),
		slog.Int("contributor_count", len(report.Contributors)))

	return report, nil
}

// OpenReport fetches open PRs and computes their age at call time.
func (s *ReportService) OpenReport(ctx context.Context) (*models.OpenReport, error) {
	const op = "service.report.OpenReport"

	log := s.log.With(slog.String("op", op))

	log.Info("building open-PR report", slog.Int("pr_limit", s.prLimit))

	prs, err := s.prRepo.GetOpenPullRequests(ctx, s.prLimit)
	if err != nil {
		log.Error("failed to fetch open pull requests", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	report, err := AgeOpenPullRequests(prs, time.Now())
	if err != nil {
		log.Warn("nothing to report", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("open-PR report built", slog.Int("pr_count", len(report.PullRequests)))

	return report, nil
}
