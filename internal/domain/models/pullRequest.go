package models

import (
	"time"
)

// ExcludedLabel marks pull requests that must not participate in
// merge statistics.
const ExcludedLabel = "exclude-from-analysis"

type ReviewState string

const (
	ReviewPending          ReviewState = "PENDING"
	ReviewApproved         ReviewState = "APPROVED"
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewCommented        ReviewState = "COMMENTED"
	ReviewDismissed        ReviewState = "DISMISSED"
)

type PullRequest struct {
	Number             int        `json:"number"`
	Title              string     `json:"title"`
	AuthorLogin        string     `json:"author_login"`
	Labels             []string   `json:"labels"`
	Reviews            []Review   `json:"reviews"`
	RequestedReviewers []string   `json:"requested_reviewers"`
	CreatedAt          time.Time  `json:"created_at"`
	MergedAt           *time.Time `json:"merged_at,omitempty"`
}

type Review struct {
	AuthorLogin string      `json:"author_login"`
	State       ReviewState `json:"state"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Excluded reports whether the PR carries the exclusion label.
func (pr PullRequest) Excluded() bool {
	for _, label := range pr.Labels {
		if label == ExcludedLabel {
			return true
		}
	}
	return false
}

// FirstReviewedAt returns the creation time of the earliest review whose
// state is not PENDING, or nil when the PR has no such review.
func (pr PullRequest) FirstReviewedAt() *time.Time {
	var first *time.Time
	for i := range pr.Reviews {
		if pr.Reviews[i].State == ReviewPending {
			continue
		}
		if first == nil || pr.Reviews[i].CreatedAt.Before(*first) {
			first = &pr.Reviews[i].CreatedAt
		}
	}
	return first
}
