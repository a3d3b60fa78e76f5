package output

import (
	"encoding/json"
	"io"
	"time"

	"pull-request-stats/internal/domain/models"
)

type (
	MergedResponse struct {
		Average         DurationPair       `json:"average"`
		Max             DurationPair       `json:"max"`
		Min             DurationPair       `json:"min"`
		IndividualStats []ContributorEntry `json:"individualStats"`
	}

	// DurationPair carries one statistic of each metric, in whole seconds.
	// FirstReview is omitted when no analyzed PR had a non-pending review.
	DurationPair struct {
		FirstReview *int64 `json:"firstReview,omitempty"`
		Merge       int64  `json:"merge"`
	}

	ContributorEntry struct {
		Name                string `json:"name"`
		SubmittedReviews    int    `json:"submittedReviews"`
		WasRequestedReviews int    `json:"wasRequestedReviews"`
	}

	OpenEntry struct {
		Number    int    `json:"number"`
		Title     string `json:"title"`
		CreatedAt int64  `json:"createdAt"`
	}
)

type JSONRenderer struct{}

func (r *JSONRenderer) MergedReport(w io.Writer, report *models.MergedReport) error {
	response := MergedResponse{
		Average:         toDurationPair(report.Summary, func(m models.MetricStats) int64 { return seconds(m.Average) }),
		Max:             toDurationPair(report.Summary, func(m models.MetricStats) int64 { return seconds(m.Max) }),
		Min:             toDurationPair(report.Summary, func(m models.MetricStats) int64 { return seconds(m.Min) }),
		IndividualStats: make([]ContributorEntry, 0, len(report.Contributors)),
	}

	for _, contributor := range report.Contributors {
		response.IndividualStats = append(response.IndividualStats, ContributorEntry{
			Name:                contributor.Login,
			SubmittedReviews:    contributor.SubmittedReviews,
			WasRequestedReviews: contributor.WasRequestedReviews,
		})
	}

	return encode(w, response)
}

func (r *JSONRenderer) OpenReport(w io.Writer, report *models.OpenReport) error {
	entries := make([]OpenEntry, 0, len(report.PullRequests))

	for _, pr := range report.PullRequests {
		entries = append(entries, OpenEntry{
			Number:    pr.Number,
			Title:     pr.Title,
			CreatedAt: pr.CreatedAt.Unix(),
		})
	}

	return encode(w, entries)
}

func encode(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func toDurationPair(summary models.DurationSummary, pick func(models.MetricStats) int64) DurationPair {
	pair := DurationPair{Merge: pick(summary.Merge)}

	if summary.FirstReview != nil {
		value := pick(*summary.FirstReview)
		pair.FirstReview = &value
	}

	return pair
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
