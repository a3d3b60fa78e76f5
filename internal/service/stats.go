package service

import (
	"strings"
	"time"

	"pull-request-stats/internal/apperrors"
	"pull-request-stats/internal/domain/models"
)

// SummarizeDurations computes the duration statistics of a merged-PR set.
// PRs without a merge timestamp and PRs carrying the exclusion label are
// filtered out first; if nothing survives the filter, apperrors.ErrNoData is
// returned and no aggregation happens. Time-to-first-review is computed only
// over PRs that have at least one non-pending review, so that sequence may be
// shorter than the merge one and is reported as absent when it is empty.
func SummarizeDurations(prs []models.PullRequest) (*models.MergedReport, error) {
	var mergeTimes []time.Duration
	var reviewTimes []time.Duration

	for _, pr := range prs {
		if pr.MergedAt == nil || pr.Excluded() {
			continue
		}

		mergeTimes = append(mergeTimes, pr.MergedAt.Sub(pr.CreatedAt))

		if reviewedAt := pr.FirstReviewedAt(); reviewedAt != nil {
			reviewTimes = append(reviewTimes, reviewedAt.Sub(pr.CreatedAt))
		}
	}

	if len(mergeTimes) == 0 {
		return nil, apperrors.ErrNoData
	}

	report := &models.MergedReport{
		Summary: models.DurationSummary{
			Merge: summarize(mergeTimes),
		},
		PRCount:         len(mergeTimes),
		ReviewedPRCount: len(reviewTimes),
		Contributors:    []models.ContributorStats{},
	}

	if len(reviewTimes) > 0 {
		firstReview := summarize(reviewTimes)
		report.Summary.FirstReview = &firstReview
	}

	return report, nil
}

// TallyContributors counts, per contributor, the PRs they reviewed and the
// PRs that requested them as reviewer. Counting is PR-level: reviewing the
// same PR twice counts once. Logins match case-insensitively and exactly,
// never by substring, so "bob" does not pick up "bobby". Input order is
// preserved; duplicate input logins are collapsed onto the first occurrence.
func TallyContributors(logins []string, prs []models.PullRequest) []models.ContributorStats {
	stats := make([]models.ContributorStats, 0, len(logins))
	seen := make(map[string]struct{}, len(logins))

	for _, login := range logins {
		key := strings.ToLower(login)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		entry := models.ContributorStats{Login: login}

		for _, pr := range prs {
			if reviewedBy(pr, login) {
				entry.SubmittedReviews++
			}
			if requestedFrom(pr, login) {
				entry.WasRequestedReviews++
			}
		}

		stats = append(stats, entry)
	}

	return stats
}

// AgeOpenPullRequests builds the open-PR aging report against the given
// reference time. Empty input yields apperrors.ErrNoData.
func AgeOpenPullRequests(prs []models.PullRequest, now time.Time) (*models.OpenReport, error) {
	if len(prs) == 0 {
		return nil, apperrors.ErrNoData
	}

	report := &models.OpenReport{
		PullRequests: make([]models.OpenPullRequest, 0, len(prs)),
	}

	for _, pr := range prs {
		report.PullRequests = append(report.PullRequests, models.OpenPullRequest{
			Number:    pr.Number,
			Title:     pr.Title,
			CreatedAt: pr.CreatedAt,
			Age:       now.Sub(pr.CreatedAt),
		})
	}

	return report, nil
}

func summarize(durations []time.Duration) models.MetricStats {
	var total time.Duration
	min, max := durations[0], durations[0]

	for _, d := range durations {
		total += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	return models.MetricStats{
		Average: (total / time.Duration(len(durations))).Truncate(time.Second),
		Min:     min,
		Max:     max,
	}
}

func reviewedBy(pr models.PullRequest, login string) bool {
	for _, review := range pr.Reviews {
		if review.State == models.ReviewPending {
			continue
		}
		if strings.EqualFold(review.AuthorLogin, login) {
			return true
		}
	}
	return false
}

func requestedFrom(pr models.PullRequest, login string) bool {
	for _, reviewer := range pr.RequestedReviewers {
		if strings.EqualFold(reviewer, login) {
			return true
		}
	}
	return false
}
