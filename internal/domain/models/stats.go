package models

import "time"

// MetricStats reduces one duration sequence to its average, minimum and
// maximum. The average is truncated to whole seconds.
type MetricStats struct {
	Average time.Duration `json:"average"`
	Min     time.Duration `json:"min"`
	Max     time.Duration `json:"max"`
}

// DurationSummary holds the merge-time distributions of an analyzed PR set.
// FirstReview is nil when no PR in the set had a non-pending review; it is
// never substituted with zeroes.
type DurationSummary struct {
	Merge       MetricStats  `json:"merge"`
	FirstReview *MetricStats `json:"first_review,omitempty"`
}

type ContributorStats struct {
	Login               string `json:"login"`
	SubmittedReviews    int    `json:"submitted_reviews"`
	WasRequestedReviews int    `json:"was_requested_reviews"`
}

// MergedReport is the full result of a merged-PR analysis.
type MergedReport struct {
	Summary         DurationSummary    `json:"summary"`
	PRCount         int                `json:"pr_count"`
	ReviewedPRCount int                `json:"reviewed_pr_count"`
	Contributors    []ContributorStats `json:"contributors"`
}

// OpenPullRequest is one row of the open-PR aging report. Age is evaluated
// when the report is built, so repeated runs yield growing values.
type OpenPullRequest struct {
	Number    int           `json:"number"`
	Title     string        `json:"title"`
	CreatedAt time.Time     `json:"created_at"`
	Age       time.Duration `json:"age"`
}

type OpenReport struct {
	PullRequests []OpenPullRequest `json:"pull_requests"`
}
