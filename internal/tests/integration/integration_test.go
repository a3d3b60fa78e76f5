package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pull-request-stats/internal/apperrors"
	"pull-request-stats/internal/config"
	"pull-request-stats/internal/output"
)

const mergedPulls = `[
	{
		"number": 12,
		"title": "Speed up indexer",
		"created_at": "2025-06-01T00:00:00Z",
		"merged_at": "2025-06-03T00:00:00Z",
		"user": {"login": "alice"},
		"requested_reviewers": [{"login": "bob"}]
	},
	{
		"number": 11,
		"title": "Vendor cleanup",
		"created_at": "2025-06-01T00:00:00Z",
		"merged_at": "2025-06-02T00:00:00Z",
		"user": {"login": "bob"},
		"labels": [{"name": "exclude-from-analysis"}],
		"requested_reviewers": [{"login": "alice"}]
	},
	{
		"number": 10,
		"title": "Bump deps",
		"created_at": "2025-05-28T00:00:00Z",
		"merged_at": "2025-05-29T00:00:00Z",
		"user": {"login": "carol"}
	}
]`

const reviews12 = `[
	{"state": "PENDING", "submitted_at": "2025-06-01T06:00:00Z", "user": {"login": "bob"}},
	{"state": "APPROVED", "submitted_at": "2025-06-02T00:00:00Z", "user": {"login": "bob"}},
	{"state": "COMMENTED", "submitted_at": "2025-06-02T12:00:00Z", "user": {"login": "bob"}}
]`

func TestMergedReportEndToEnd(t *testing.T) {
	ts := NewTestServer(10, map[string]string{
		"/repos/acme/widgets/pulls":            mergedPulls,
		"/repos/acme/widgets/pulls/12/reviews": reviews12,
		"/repos/acme/widgets/pulls/11/reviews": `[]`,
		"/repos/acme/widgets/pulls/10/reviews": `[]`,
		"/repos/acme/widgets/contributors":     `[{"login": "alice"}, {"login": "bob"}]`,
	})
	defer ts.Close()

	report, err := ts.Service.MergedReport(context.Background(), true)
	require.NoError(t, err)

	// PR 11 carries the exclusion label: only 12 and 10 are analyzed
	assert.Equal(t, 2, report.PRCount)
	assert.Equal(t, 1, report.ReviewedPRCount)

	assert.Equal(t, 24*time.Hour, report.Summary.Merge.Min)
	assert.Equal(t, 48*time.Hour, report.Summary.Merge.Max)
	assert.Equal(t, 36*time.Hour, report.Summary.Merge.Average)

	require.NotNil(t, report.Summary.FirstReview)
	assert.Equal(t, 24*time.Hour, report.Summary.FirstReview.Average)

	require.Len(t, report.Contributors, 2)
	assert.Equal(t, "alice", report.Contributors[0].Login)
	assert.Equal(t, 0, report.Contributors[0].SubmittedReviews)
	assert.Equal(t, 1, report.Contributors[0].WasRequestedReviews)
	assert.Equal(t, "bob", report.Contributors[1].Login)
	assert.Equal(t, 1, report.Contributors[1].SubmittedReviews)
	assert.Equal(t, 1, report.Contributors[1].WasRequestedReviews)

	var buf bytes.Buffer
	require.NoError(t, output.NewRenderer(config.OutputJSON).MergedReport(&buf, report))

	var response output.MergedResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &response))
	assert.Equal(t, int64(36*3600), response.Average.Merge)
	require.NotNil(t, response.Average.FirstReview)
	assert.Equal(t, int64(24*3600), *response.Average.FirstReview)
	require.Len(t, response.IndividualStats, 2)
}

func TestMergedReportEndToEnd_NoData(t *testing.T) {
	ts := NewTestServer(10, map[string]string{
		"/repos/acme/widgets/pulls": `[]`,
	})
	defer ts.Close()

	_, err := ts.Service.MergedReport(context.Background(), false)
	require.ErrorIs(t, err, apperrors.ErrNoData)
}

func TestOpenReportEndToEnd(t *testing.T) {
	createdAt := time.Now().UTC().Add(-(3*24 + 5) * time.Hour).Truncate(time.Second)

	pulls, err := json.Marshal([]map[string]interface{}{
		{
			"number":     7,
			"title":      "Rework pagination",
			"created_at": createdAt.Format(time.RFC3339),
			"user":       map[string]string{"login": "alice"},
		},
	})
	require.NoError(t, err)

	ts := NewTestServer(10, map[string]string{
		"/repos/acme/widgets/pulls": string(pulls),
	})
	defer ts.Close()

	report, err := ts.Service.OpenReport(context.Background())
	require.NoError(t, err)

	require.Len(t, report.PullRequests, 1)
	assert.Equal(t, 7, report.PullRequests[0].Number)
	assert.GreaterOrEqual(t, report.PullRequests[0].Age, (3*24+5)*time.Hour)

	var buf bytes.Buffer
	require.NoError(t, output.NewRenderer(config.OutputText).OpenReport(&buf, report))
	assert.Contains(t, buf.String(), `PR #7 "Rework pagination": open for 3 days, 5 hours`)
}
