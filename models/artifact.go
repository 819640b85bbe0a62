package models

import "database/sql"

// Artifact represents the Artifact table
type Artifact struct {
	ArtifactID   int            `db:"Artifact_ID" json:"artifact_id"`
	Name         sql.NullString `db:"Name" json:"name,omitempty"`
	Type         string         `db:"Type" json:"type"`
	AnomalyLevel sql.NullInt64  `db:"Anomaly_Level" json:"anomaly_level,omitempty"`
	FoundAt      sql.NullInt64  `db:"Found_At" json:"found_at,omitempty"`
}
