package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const upsertAnalysisReport = `-- name: UpsertAnalysisReport :exec
INSERT INTO analysis_reports (
report, file_name, used_fallback, talent_id)
VALUES ( $1, $2, $3, $4)
ON CONFLICT (talent_id)
DO UPDATE SET
    report = EXCLUDED.report,
    file_name = EXCLUDED.file_name,
    used_fallback = EXCLUDED.used_fallback,
    updated_at = CURRENT_TIMESTAMP
`

type UpsertAnalysisReportParams struct {
	Report       json.RawMessage
	FileName     string
	UsedFallback bool
	TalentID     uuid.UUID
}

func (q *Queries) UpsertAnalysisReport(ctx context.Context, arg UpsertAnalysisReportParams) error {
	_, err := q.db.ExecContext(ctx, upsertAnalysisReport, arg.Report, arg.FileName, arg.UsedFallback, arg.TalentID)
	return err
}
