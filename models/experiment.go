package models

import "database/sql"

// Experiment represents the Experiment table
type Experiment struct {
	ExpID           int            `db:"Exp_ID" json:"exp_id"`
	Purpose         string         `db:"Purpose" json:"purpose"`
	Confidentiality string         `db:"Confidentiality" json:"confidentiality"`
	Result          sql.NullString `db:"Result" json:"result,omitempty"`
	Date            string         `db:"Date" json:"date"`
	ConductedBy     sql.NullInt64  `db:"Conducted_By" json:"conducted_by,omitempty"`
}
