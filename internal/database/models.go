package database

import (
	"time"

	"github.com/google/uuid"
)

type Talent struct {
	ID             uuid.UUID
	FullName       string
	CareerStage    string
	Skills         []string
	Degrees        []string
	Certifications []string
	Interests      []string
	SelectedPathID uuid.NullUUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CareerPath struct {
	ID                     uuid.UUID
	Title                  string
	RequiredSkills         []string
	RequiredCertifications []string
	SuggestedDegrees       []string
	Tools                  []string
	CreatedAt              time.Time
}
