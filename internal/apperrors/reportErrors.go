package apperrors

import "errors"

var (
	ErrNoData              = errors.New("no pull requests to analyze")
	ErrUnknownAnalyzeMode  = errors.New("unknown analyze mode, expected 'open' or 'merged'")
	ErrUnknownOutputFormat = errors.New("unknown output format, expected 'text' or 'json'")
	ErrRepoNameRequired    = errors.New("repository name is required")
	ErrInvalidRepoName     = errors.New("repository name must be in 'owner/repo' form")
	ErrInvalidPRLimit      = errors.New("pr limit must be a positive number")
)
