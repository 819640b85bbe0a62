package models

import "database/sql"

// Entity represents the Entity table
type Entity struct {
	EntityID      int            `db:"Entity_ID" json:"entity_id"`
	Name          string         `db:"Name" json:"name"`
	Species       string         `db:"Species" json:"species"`
	ThreatLevel   string         `db:"Threat_Level" json:"threat_level"`
	OriginWorld   string         `db:"Origin_World" json:"origin_world"`
	FirstSighting sql.NullString `db:"First_Sighting" json:"first_sighting,omitempty"`
}

// Monster represents the Monster subtype table
type Monster struct {
	EntityID        int           `db:"Entity_ID" json:"entity_id"`
	AggressionIndex sql.NullInt64 `db:"Aggression_Index" json:"aggression_index,omitempty"`
}

// ShadowCreature represents the Shadow_Creature subtype table
type ShadowCreature struct {
	EntityID          int            `db:"Entity_ID" json:"entity_id"`
	CorruptionLevel   sql.NullInt64  `db:"Corruption_Level" json:"corruption_level,omitempty"`
	ManifestationType sql.NullString `db:"Manifestation_Type" json:"manifestation_type,omitempty"`
}

// MindEntity represents the Mind_Entity subtype table
type MindEntity struct {
	EntityID              int           `db:"Entity_ID" json:"entity_id"`
	InfluenceRange        sql.NullInt64 `db:"Influence_Range" json:"influence_range,omitempty"`
	CognitiveLinkStrength sql.NullInt64 `db:"Cognitive_Link_Strength" json:"cognitive_link_strength,omitempty"`
}
