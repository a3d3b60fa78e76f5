package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pull-request-stats/internal/apperrors"
	"pull-request-stats/internal/config"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *config.Options
		wantErr error
	}{
		{
			name: "merged with defaults",
			args: []string{"--analyze", "merged", "--repo-name", "acme/widgets"},
			want: &config.Options{
				Mode:    config.AnalyzeMerged,
				Output:  config.OutputText,
				Owner:   "acme",
				Repo:    "widgets",
				PRLimit: 10,
			},
		},
		{
			name: "everything set, values case-insensitive",
			args: []string{
				"--analyze", "OPEN",
				"--repo-name", "acme/widgets",
				"--pr-limit", "25",
				"--output", "JSON",
				"--individual-stats",
			},
			want: &config.Options{
				Mode:            config.AnalyzeOpen,
				Output:          config.OutputJSON,
				Owner:           "acme",
				Repo:            "widgets",
				PRLimit:         25,
				IndividualStats: true,
			},
		},
		{
			name:    "unknown analyze mode",
			args:    []string{"--analyze", "closed", "--repo-name", "acme/widgets"},
			wantErr: apperrors.ErrUnknownAnalyzeMode,
		},
		{
			name:    "missing analyze mode",
			args:    []string{"--repo-name", "acme/widgets"},
			wantErr: apperrors.ErrUnknownAnalyzeMode,
		},
		{
			name:    "unknown output format",
			args:    []string{"--analyze", "merged", "--repo-name", "acme/widgets", "--output", "xml"},
			wantErr: apperrors.ErrUnknownOutputFormat,
		},
		{
			name:    "missing repo name",
			args:    []string{"--analyze", "merged"},
			wantErr: apperrors.ErrRepoNameRequired,
		},
		{
			name:    "repo name without owner",
			args:    []string{"--analyze", "merged", "--repo-name", "/widgets"},
			wantErr: apperrors.ErrInvalidRepoName,
		},
		{
			name:    "repo name with too many parts",
			args:    []string{"--analyze", "merged", "--repo-name", "a/b/c"},
			wantErr: apperrors.ErrInvalidRepoName,
		},
		{
			name:    "zero pr limit",
			args:    []string{"--analyze", "merged", "--repo-name", "acme/widgets", "--pr-limit", "0"},
			wantErr: apperrors.ErrInvalidPRLimit,
		},
		{
			name:    "negative pr limit",
			args:    []string{"--analyze", "merged", "--repo-name", "acme/widgets", "--pr-limit", "-3"},
			wantErr: apperrors.ErrInvalidPRLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.ParseFlags(tt.args)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAnalyzeMode(t *testing.T) {
	mode, err := config.ParseAnalyzeMode("Merged")
	require.NoError(t, err)
	assert.Equal(t, config.AnalyzeMerged, mode)

	_, err = config.ParseAnalyzeMode("")
	require.ErrorIs(t, err, apperrors.ErrUnknownAnalyzeMode)
}

func TestParseOutputFormat(t *testing.T) {
	format, err := config.ParseOutputFormat("Text")
	require.NoError(t, err)
	assert.Equal(t, config.OutputText, format)

	_, err = config.ParseOutputFormat("yaml")
	require.ErrorIs(t, err, apperrors.ErrUnknownOutputFormat)
}
