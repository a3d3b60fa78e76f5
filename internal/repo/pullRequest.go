package repo

import (
	"context"
	"fmt"

	"github.com/google/go-github/v60/github"

	"pull-request-stats/internal/domain/models"
)

type PullRequestRepo struct {
	client *github.Client
	owner  string
	repo   string
}

func NewPullRequestRepo(client *github.Client, owner string, repo string) *PullRequestRepo {
	return &PullRequestRepo{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

// GetMergedPullRequests returns up to limit merged pull requests, newest
// first, with their reviews and requested reviewers loaded.
func (r *PullRequestRepo) GetMergedPullRequests(ctx context.Context, limit int) ([]models.PullRequest, error) {
	const op = "repo.pullRequest.GetMergedPullRequests"

	opts := &github.PullRequestListOptions{
		State:     "closed",
		Sort:      "created",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: pageSize(limit),
		},
	}

	merged := make([]models.PullRequest, 0, limit)

	for {
		page, resp, err := r.client.PullRequests.List(ctx, r.owner, r.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to list pull requests: %w", op, err)
		}

		for _, pr := range page {
			if pr.MergedAt == nil {
				continue
			}

			reviews, err := r.getReviews(ctx, pr.GetNumber())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}

			merged = append(merged, toPullRequest(pr, reviews))
			if len(merged) == limit {
				return merged, nil
			}
		}

		if resp.NextPage == 0 {
			return merged, nil
		}
		opts.Page = resp.NextPage
	}
}

// GetOpenPullRequests returns up to limit currently open pull requests,
// newest first. Reviews are not loaded: the open-PR report does not use them.
func (r *PullRequestRepo) GetOpenPullRequests(ctx context.Context, limit int) ([]models.PullRequest, error) {
	const op = "repo.pullRequest.GetOpenPullRequests"

	opts := &github.PullRequestListOptions{
		State:     "open",
		Sort:      "created",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: pageSize(limit),
		},
	}

	open := make([]models.PullRequest, 0, limit)

	for {
		page, resp, err := r.client.PullRequests.List(ctx, r.owner, r.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to list pull requests: %w", op, err)
		}

		for _, pr := range page {
			open = append(open, toPullRequest(pr, nil))
			if len(open) == limit {
				return open, nil
			}
		}

		if resp.NextPage == 0 {
			return open, nil
		}
		opts.Page = resp.NextPage
	}
}

// GetContributors returns repository contributor logins in API order,
// deduplicated.
func (r *PullRequestRepo) GetContributors(ctx context.Context) ([]string, error) {
	const op = "repo.pullRequest.GetContributors"

	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var logins []string
	seen := make(map[string]struct{})

	for {
		page, resp, err := r.client.Repositories.ListContributors(ctx, r.owner, r.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to list contributors: %w", op, err)
		}

		for _, contributor := range page {
			login := contributor.GetLogin()
			if login == "" {
				continue
			}
			if _, ok := seen[login]; ok {
				continue
			}
			seen[login] = struct{}{}
			logins = append(logins, login)
		}

		if resp.NextPage == 0 {
			return logins, nil
		}
		opts.Page = resp.NextPage
	}
}

func (r *PullRequestRepo) getReviews(ctx context.Context, number int) ([]*github.PullRequestReview, error) {
	opts := &github.ListOptions{PerPage: 100}

	var reviews []*github.PullRequestReview

	for {
		page, resp, err := r.client.PullRequests.ListReviews(ctx, r.owner, r.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews for PR #%d: %w", number, err)
		}

		reviews = append(reviews, page...)

		if resp.NextPage == 0 {
			return reviews, nil
		}
		opts.Page = resp.NextPage
	}
}

func toPullRequest(pr *github.PullRequest, reviews []*github.PullRequestReview) models.PullRequest {
	result := models.PullRequest{
		Number:      pr.GetNumber(),
		Title:       pr.GetTitle(),
		AuthorLogin: pr.GetUser().GetLogin(),
		CreatedAt:   pr.GetCreatedAt().Time,
	}

	if pr.MergedAt != nil {
		mergedAt := pr.MergedAt.Time
		result.MergedAt = &mergedAt
	}

	for _, label := range pr.Labels {
		result.Labels = append(result.Labels, label.GetName())
	}

	for _, reviewer := range pr.RequestedReviewers {
		result.RequestedReviewers = append(result.RequestedReviewers, reviewer.GetLogin())
	}

	for _, review := range reviews {
		result.Reviews = append(result.Reviews, models.Review{
			AuthorLogin: review.GetUser().GetLogin(),
			State:       models.ReviewState(review.GetState()),
			CreatedAt:   review.GetSubmittedAt().Time,
		})
	}

	return result
}

func pageSize(limit int) int {
	if limit > 100 {
		return 100
	}
	return limit
}
