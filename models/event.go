package models

import "database/sql"

// Event represents the Event table
type Event struct {
	EventID     int            `db:"Event_ID" json:"event_id"`
	Date        string         `db:"Date" json:"date"`
	Time        string         `db:"Time" json:"time"`
	Description sql.NullString `db:"Description" json:"description,omitempty"`
	Outcome     string         `db:"Outcome" json:"outcome"`
	Severity    string         `db:"Severity" json:"severity"`
	LocationID  sql.NullInt64  `db:"Location_ID" json:"location_id,omitempty"`
	PortalID    sql.NullInt64  `db:"Portal_ID" json:"portal_id,omitempty"`
}
