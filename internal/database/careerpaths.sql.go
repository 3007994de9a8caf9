package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const getCareerPathByID = `-- name: GetCareerPathByID :one
SELECT id, title, required_skills, required_certifications, suggested_degrees, tools, created_at FROM career_paths WHERE id=$1
`

func (q *Queries) GetCareerPathByID(ctx context.Context, id uuid.UUID) (CareerPath, error) {
	row := q.db.QueryRowContext(ctx, getCareerPathByID, id)
	var i CareerPath
	err := row.Scan(
		&i.ID,
		&i.Title,
		pq.Array(&i.RequiredSkills),
		pq.Array(&i.RequiredCertifications),
		pq.Array(&i.SuggestedDegrees),
		pq.Array(&i.Tools),
		&i.CreatedAt,
	)
	return i, err
}
