package handler

import (
	"net/http"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/response"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/report"
)

// NewTestReportHandler serves a static, fully populated example report so
// client builds can verify their parsing against the full contract without
// running an analysis.
func NewTestReportHandler() http.HandlerFunc {
	example := report.Example()
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, example)
	}
}
