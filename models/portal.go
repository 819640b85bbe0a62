package models

import "database/sql"

// Portal represents the Portal table
type Portal struct {
	PortalID       int             `db:"Portal_ID" json:"portal_id"`
	Name           sql.NullString  `db:"Name" json:"name,omitempty"`
	Status         string          `db:"Status" json:"status"`
	HasOrigin      sql.NullInt64   `db:"Has_Origin" json:"has_origin,omitempty"`
	HasDestination sql.NullInt64   `db:"Has_Destination" json:"has_destination,omitempty"`
	DiscoveredOn   sql.NullString  `db:"Discovered_On" json:"discovered_on,omitempty"`
	LinksTo        sql.NullInt64   `db:"Links_To" json:"links_to,omitempty"`
	CoordinateX    sql.NullFloat64 `db:"Coordinate_X" json:"coordinate_x,omitempty"`
	CoordinateY    sql.NullFloat64 `db:"Coordinate_Y" json:"coordinate_y,omitempty"`
}
