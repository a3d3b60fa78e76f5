package output

import (
	"io"

	"pull-request-stats/internal/config"
	"pull-request-stats/internal/domain/models"
)

// Renderer writes a finished report to the given writer. Implementations are
// stateless; the writer is stdout in production and a buffer in tests.
type Renderer interface {
	MergedReport(w io.Writer, report *models.MergedReport) error
	OpenReport(w io.Writer, report *models.OpenReport) error
}

// NewRenderer picks the renderer for an already-validated output format.
func NewRenderer(format config.OutputFormat) Renderer {
	if format == config.OutputJSON {
		return &JSONRenderer{}
	}
	return &TextRenderer{}
}
