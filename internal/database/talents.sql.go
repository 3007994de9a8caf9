package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const getTalentByID = `-- name: GetTalentByID :one
SELECT id, full_name, career_stage, skills, degrees, certifications, interests, selected_path_id, created_at, updated_at FROM talents WHERE id=$1
`

func (q *Queries) GetTalentByID(ctx context.Context, id uuid.UUID) (Talent, error) {
	row := q.db.QueryRowContext(ctx, getTalentByID, id)
	var i Talent
	err := row.Scan(
		&i.ID,
		&i.FullName,
		&i.CareerStage,
		pq.Array(&i.Skills),
		pq.Array(&i.Degrees),
		pq.Array(&i.Certifications),
		pq.Array(&i.Interests),
		&i.SelectedPathID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
