package models

import "database/sql"

// EntityAppearance represents the Entity_Appearance junction table
type EntityAppearance struct {
	AppearanceID int            `db:"Appearance_ID" json:"appearance_id"`
	EntityID     int            `db:"Entity_ID" json:"entity_id"`
	EventID      int            `db:"Event_ID" json:"event_id"`
	StartTime    sql.NullString `db:"Start_Time" json:"start_time,omitempty"`
	EndTime      sql.NullString `db:"End_Time" json:"end_time,omitempty"`
}

// VictimRecord represents the Victim_Record junction table
type VictimRecord struct {
	VictimNo       int            `db:"Victim_No" json:"victim_no"`
	PersonID       int            `db:"Person_ID" json:"person_id"`
	HurtIn         int            `db:"Hurt_In" json:"hurt_in"`
	InjurySeverity sql.NullString `db:"Injury_Severity" json:"injury_severity,omitempty"`
}
