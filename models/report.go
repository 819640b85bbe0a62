package models

import "database/sql"

// Report represents the Report table
type Report struct {
	ReportID          int           `db:"Report_ID" json:"report_id"`
	Date              string        `db:"Date" json:"date"`
	AuthoredBy        int           `db:"Authored_By" json:"authored_by"`
	VerifiedBy        sql.NullInt64 `db:"Verified_By" json:"verified_by,omitempty"`
	DocumentsArtifact sql.NullInt64 `db:"Documents_Artifact" json:"documents_artifact,omitempty"`
}

// ReportDetails represents the Report_Details table
type ReportDetails struct {
	ReportID int            `db:"Report_ID" json:"report_id"`
	Summary  sql.NullString `db:"Summary" json:"summary,omitempty"`
	Verdict  sql.NullString `db:"Verdict" json:"verdict,omitempty"`
}
