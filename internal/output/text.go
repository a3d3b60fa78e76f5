package output

import (
	"fmt"
	"io"
	"time"

	"pull-request-stats/internal/domain/models"
)

type TextRenderer struct{}

func (r *TextRenderer) MergedReport(w io.Writer, report *models.MergedReport) error {
	if _, err := fmt.Fprintf(w, "Merged PRs analyzed: %d (%d with reviews)\n\n", report.PRCount, report.ReviewedPRCount); err != nil {
		return err
	}

	if err := writeMetric(w, "Time to merge", &report.Summary.Merge); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if err := writeMetric(w, "Time to first review", report.Summary.FirstReview); err != nil {
		return err
	}

	if len(report.Contributors) > 0 {
		if _, err := fmt.Fprintln(w, "\nIndividual stats:"); err != nil {
			return err
		}
		for _, contributor := range report.Contributors {
			_, err := fmt.Fprintf(w, "  %s: %d PRs reviewed, %d review requests\n",
				contributor.Login, contributor.SubmittedReviews, contributor.WasRequestedReviews)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *TextRenderer) OpenReport(w io.Writer, report *models.OpenReport) error {
	for _, pr := range report.PullRequests {
		_, err := fmt.Fprintf(w, "PR #%d %q: open for %s\n", pr.Number, pr.Title, formatDaysHours(pr.Age))
		if err != nil {
			return err
		}
	}
	return nil
}

func writeMetric(w io.Writer, name string, stats *models.MetricStats) error {
	if stats == nil {
		_, err := fmt.Fprintf(w, "%s: no reviews recorded\n", name)
		return err
	}

	rows := []struct {
		label string
		value time.Duration
	}{
		{"average", stats.Average},
		{"min", stats.Min},
		{"max", stats.Max},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s (%s): %s\n", name, row.label, formatDaysHoursMinutes(row.value)); err != nil {
			return err
		}
	}

	return nil
}

// formatDaysHoursMinutes decomposes a duration into whole days, remaining
// hours and remaining minutes. Truncation only, no rounding.
func formatDaysHoursMinutes(d time.Duration) string {
	days, hours, minutes := decompose(d)
	return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
}

func formatDaysHours(d time.Duration) string {
	days, hours, _ := decompose(d)
	return fmt.Sprintf("%d days, %d hours", days, hours)
}

func decompose(d time.Duration) (days, hours, minutes int64) {
	totalSeconds := int64(d / time.Second)
	days = totalSeconds / 86400
	hours = (totalSeconds % 86400) / 3600
	minutes = (totalSeconds % 3600) / 60
	return days, hours, minutes
}
