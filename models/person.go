package models

import "database/sql"

// Person represents the Person table
type Person struct {
	PersonID     int            `db:"Person_ID" json:"person_id"`
	Name         string         `db:"Name" json:"name"`
	Role         string         `db:"Role" json:"role"`
	Age          sql.NullInt64  `db:"Age" json:"age,omitempty"`
	Status       string         `db:"Status" json:"status"`
	Affiliation  sql.NullString `db:"Affiliation" json:"affiliation,omitempty"`
	SupervisorID sql.NullInt64  `db:"Supervisor_ID" json:"supervisor_id,omitempty"`
	KnownAliases sql.NullString `db:"Known_Aliases" json:"known_aliases,omitempty"`
}

// Researcher represents the Researcher subtype table
type Researcher struct {
	PersonID       int            `db:"Person_ID" json:"person_id"`
	ClearanceLevel sql.NullString `db:"Clearance_Level" json:"clearance_level,omitempty"`
}

// Agent represents the Agent subtype table
type Agent struct {
	PersonID    int             `db:"Person_ID" json:"person_id"`
	SuccessRate sql.NullFloat64 `db:"Success_Rate" json:"success_rate,omitempty"`
}

// Victim represents the Victim subtype table
type Victim struct {
	PersonID       int            `db:"Person_ID" json:"person_id"`
	InjurySeverity sql.NullString `db:"Injury_Severity" json:"injury_severity,omitempty"`
}

// PsychicSubject represents the Psychic_Subject subtype table
type PsychicSubject struct {
	PersonID     int            `db:"Person_ID" json:"person_id"`
	AbilityType  sql.NullString `db:"Ability_Type" json:"ability_type,omitempty"`
	PowerLevel   sql.NullInt64  `db:"Power_Level" json:"power_level,omitempty"`
	ControlScore sql.NullInt64  `db:"Control_Score" json:"control_score,omitempty"`
}
