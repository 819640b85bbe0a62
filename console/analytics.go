package console

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/hnl-ops/strangerdb/models"
)

func (c *Console) portalStabilityScanner() {
	query := `
        SELECT
            p.Portal_ID,
            p.Name,
            p.Status,
            origin.Name AS origin_name,
            dest.Name AS destination_name,
            COUNT(DISTINCT e.Event_ID) AS event_count,
            SUM(CASE WHEN e.Severity = 'Severe' THEN 1 ELSE 0 END) AS severe_count
        FROM Portal p
        LEFT JOIN Event e ON e.Portal_ID = p.Portal_ID
        LEFT JOIN Location origin ON origin.Location_ID = p.Has_Origin
        LEFT JOIN Location dest ON dest.Location_ID = p.Has_Destination
        GROUP BY p.Portal_ID, p.Name, p.Status, origin.Name, dest.Name
        ORDER BY p.Portal_ID
    `

	rows, err := c.db.Query(query)
	if err != nil {
		color.Red("Error scanning portals: %v", err)
		return
	}
	defer rows.Close()

	color.Cyan("=== Portal Stability Scanner (all time) ===")
	for rows.Next() {
		var (
			portalID            int
			name, origin, dest  sql.NullString
			status              string
			eventCnt, severeCnt sql.NullInt64
		)
		if err := rows.Scan(&portalID, &name, &status, &origin, &dest, &eventCnt, &severeCnt); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}

		events := int(orInt64(eventCnt))
		severe := int(orInt64(severeCnt))
		score := portalRiskScore(events, severe, status == "Active")
		level := portalRiskLevel(score)

		line := fmt.Sprintf("[Portal %d] %-18s | Status: %-6s | Events: %2d | Severe: %2d | Risk: %s\n    ↳ %s  ➜  %s",
			portalID, orString(name, "N/A"), status, events, severe, level,
			orString(origin, "Unknown"), orString(dest, "Unknown"))
		switch level {
		case "CRITICAL":
			color.Red("%s", line)
		case "HIGH":
			color.Yellow("%s", line)
		default:
			color.Green("%s", line)
		}
	}
	fmt.Fprintln(c.out)
}

// entityThreatAnalyzer reports sightings, exposure and hotzones for one
// entity, selected by ID to avoid name collisions.
func (c *Console) entityThreatAnalyzer() {
	input := c.prompt("Entity_ID: ")
	entityID, err := strconv.Atoi(input)
	if err != nil {
		color.Red("Invalid Entity_ID '%s'. Must be an integer.", input)
		return
	}

	var entity models.Entity
	err = c.db.QueryRow(
		"SELECT Entity_ID, Name, Threat_Level, Origin_World FROM Entity WHERE Entity_ID = ?",
		entityID,
	).Scan(&entity.EntityID, &entity.Name, &entity.ThreatLevel, &entity.OriginWorld)
	if err == sql.ErrNoRows {
		color.Red("No entity with ID %d found.", entityID)
		return
	}
	if err != nil {
		color.Red("Error loading entity: %v", err)
		return
	}

	color.Magenta("=== Entity Threat Analyzer — [%d] %s ===", entity.EntityID, entity.Name)
	if entity.ThreatLevel == "Critical" {
		color.Red("Threat Level: %s", entity.ThreatLevel)
	} else {
		color.Yellow("Threat Level: %s", entity.ThreatLevel)
	}

	// Duration is derived on the fly; the schema stores start/end only.
	rows, err := c.db.Query(`
        SELECT ea.Appearance_ID,
               ea.Event_ID,
               ea.Start_Time,
               ea.End_Time,
               TIMESTAMPDIFF(MINUTE, ea.Start_Time, ea.End_Time) AS Duration,
               l.Name AS LocationName
        FROM Entity_Appearance ea
        LEFT JOIN Event e ON ea.Event_ID = e.Event_ID
        LEFT JOIN Location l ON e.Location_ID = l.Location_ID
        WHERE ea.Entity_ID = ?`, entityID)
	if err != nil {
		color.Red("Error loading appearances: %v", err)
		return
	}
	defer rows.Close()

	var (
		sightings     int
		totalDuration int64
		hotzones      = map[string]int{}
	)
	for rows.Next() {
		var (
			appearanceID, eventID sql.NullInt64
			start, end, locName   sql.NullString
			duration              sql.NullInt64
		)
		if err := rows.Scan(&appearanceID, &eventID, &start, &end, &duration, &locName); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}
		sightings++
		totalDuration += orInt64(duration)
		hotzones[orString(locName, "Unknown")]++
	}

	fmt.Fprintf(c.out, "Total Sightings: %d\n", sightings)
	fmt.Fprintf(c.out, "Total Exposure Duration: %d minutes\n", totalDuration)

	if len(hotzones) > 0 {
		type zone struct {
			name  string
			count int
		}
		zones := make([]zone, 0, len(hotzones))
		for name, count := range hotzones {
			zones = append(zones, zone{name, count})
		}
		sort.Slice(zones, func(i, j int) bool {
			if zones[i].count != zones[j].count {
				return zones[i].count > zones[j].count
			}
			return zones[i].name < zones[j].name
		})
		parts := make([]string, len(zones))
		for i, z := range zones {
			parts[i] = fmt.Sprintf("%s(%d)", z.name, z.count)
		}
		fmt.Fprintf(c.out, "Hotzones: %s\n", strings.Join(parts, ", "))
	} else {
		fmt.Fprintln(c.out, "Hotzones: None recorded.")
	}

	score := entityThreatScore(sightings, entity.ThreatLevel == "Critical")
	color.Cyan("Recommended Response: %s\n", threatRecommendation(score))
}

// realityDisturbanceMap renders per-location disturbance bars on a pseudo-log
// scale. Indicator precedence: distortion level, else population density,
// else generic risk level.
func (c *Console) realityDisturbanceMap() {
	query := `
        SELECT
            l.Location_ID,
            l.Name,
            l.World_Type,
            COALESCE(ul.Distortion_Level, sl.Population_Density, l.Risk_Level) AS indicator
        FROM Location l
        LEFT JOIN UpsideDown_Location ul ON l.Location_ID = ul.Location_ID
        LEFT JOIN Surface_Location sl ON l.Location_ID = sl.Location_ID
        ORDER BY indicator DESC
    `

	rows, err := c.db.Query(query)
	if err != nil {
		color.Red("Error loading disturbance data: %v", err)
		return
	}
	defer rows.Close()

	type mapRow struct {
		name      string
		worldType string
		score     float64
	}
	var entries []mapRow
	for rows.Next() {
		var (
			locationID int
			name       string
			worldType  string
			indicator  sql.NullFloat64
		)
		if err := rows.Scan(&locationID, &name, &worldType, &indicator); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}
		raw := 1.0
		if indicator.Valid {
			raw = indicator.Float64
		}
		entries = append(entries, mapRow{name, worldType, disturbanceScore(raw)})
	}

	scores := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = e.score
	}
	norms := normalizeScores(scores)

	color.Cyan("=== Reality Disturbance Map ===")
	fmt.Fprintln(c.out, "(🟥 Critical · 🟧 High · 🟨 Medium · 🟩 Normal)")
	fmt.Fprintln(c.out)

	for i, e := range entries {
		norm := norms[i]
		line := fmt.Sprintf("%-10s %-25s %-20s (%s)",
			disturbanceSeverity(norm), e.name, strings.Repeat("█", barLength(norm)), e.worldType)
		switch {
		case norm >= 0.75:
			color.Red("%s", line)
		case norm >= 0.5:
			color.HiRed("%s", line)
		case norm >= 0.25:
			color.Yellow("%s", line)
		default:
			color.Green("%s", line)
		}
	}
	fmt.Fprintln(c.out)
}

func (c *Console) psychicActivityDashboard() {
	rows, err := c.db.Query(`
        SELECT p.Person_ID, p.Name, ps.Power_Level, ps.Control_Score, ps.Ability_Type
        FROM Person p
        JOIN Psychic_Subject ps ON p.Person_ID = ps.Person_ID
        ORDER BY ps.Power_Level DESC`)
	if err != nil {
		color.Red("Error loading psychic subjects: %v", err)
		return
	}

	type subjectRow struct {
		person  models.Person
		psychic models.PsychicSubject
	}
	// Collect before the per-subject queries; the pool holds one connection.
	var subjects []subjectRow
	for rows.Next() {
		var s subjectRow
		if err := rows.Scan(&s.person.PersonID, &s.person.Name,
			&s.psychic.PowerLevel, &s.psychic.ControlScore, &s.psychic.AbilityType); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}
		subjects = append(subjects, s)
	}
	rows.Close()

	color.Cyan("=== Psychic Activity Dashboard ===")
	for _, s := range subjects {
		color.Magenta("[%d] %s — Ability: %s | Power: %d | Control: %d",
			s.person.PersonID, s.person.Name,
			orString(s.psychic.AbilityType, "Unknown"),
			orInt64(s.psychic.PowerLevel), orInt64(s.psychic.ControlScore))

		exps, err := c.db.Query(
			"SELECT Exp_ID, Purpose, Date FROM Experiment WHERE Conducted_By = ? ORDER BY Date DESC LIMIT 3",
			s.person.PersonID)
		if err != nil {
			color.Red("Error loading experiments: %v", err)
			return
		}
		printed := false
		for exps.Next() {
			var exp models.Experiment
			if err := exps.Scan(&exp.ExpID, &exp.Purpose, &exp.Date); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			if !printed {
				fmt.Fprintln(c.out, "  Recent Experiments:")
				printed = true
			}
			fmt.Fprintf(c.out, "    - (%d) %s: %s\n", exp.ExpID, exp.Date, shorten(exp.Purpose, 60))
		}
		exps.Close()

		events, err := c.db.Query(`
            SELECT e.Event_ID, e.Date, e.Description
            FROM Event e
            JOIN Victim_Record vr ON vr.Hurt_In = e.Event_ID AND vr.Person_ID = ?
            ORDER BY e.Date DESC LIMIT 3`, s.person.PersonID)
		if err != nil {
			color.Red("Error loading linked events: %v", err)
			return
		}
		printed = false
		for events.Next() {
			var (
				eventID int
				date    string
				desc    sql.NullString
			)
			if err := events.Scan(&eventID, &date, &desc); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			if !printed {
				fmt.Fprintln(c.out, "  Linked Events:")
				printed = true
			}
			fmt.Fprintf(c.out, "    - (%d) %s: %s\n", eventID, date, shorten(orString(desc, ""), 60))
		}
		events.Close()
	}
	fmt.Fprintln(c.out)
}

// dimensionalThreatScore recomputes the composite threat score from live
// counts and prints the breakdown. Returned values feed the menu banner.
func (c *Console) dimensionalThreatScore() (int, string) {
	var severe, critical, active int
	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) AS severe FROM Event WHERE Severity = 'Severe'", &severe},
		{"SELECT COUNT(*) AS critical FROM Entity WHERE Threat_Level = 'Critical'", &critical},
		{"SELECT COUNT(*) AS active FROM Portal WHERE Status = 'Active'", &active},
	}
	for _, cnt := range counts {
		if err := c.db.QueryRow(cnt.query).Scan(cnt.dest); err != nil {
			color.Red("Error computing threat score: %v", err)
			return 0, "NORMAL"
		}
	}

	score := compositeThreatScore(severe, critical, active)
	level := compositeThreatLevel(score)

	color.Cyan("=== Dimensional Threat Score (DTS) ===")
	fmt.Fprintf(c.out, "DTS = (Severe:%d *5) + (Critical:%d *10) + (Active:%d *4) = %d\n", severe, critical, active, score)
	switch level {
	case "EXTREME":
		color.Red("THREAT LEVEL: %s\n", level)
	case "ELEVATED":
		color.Yellow("THREAT LEVEL: %s\n", level)
	default:
		color.Green("THREAT LEVEL: %s\n", level)
	}
	return score, level
}

func (c *Console) temporalBreachTimeline() {
	rows, err := c.db.Query("SELECT Event_ID, Date, Time, Description, Severity FROM Event ORDER BY Date, Time")
	if err != nil {
		color.Red("Error loading timeline: %v", err)
		return
	}
	defer rows.Close()

	color.Cyan("=== Temporal Breach Timeline ===")
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Date", "Time", "Severity", "Description"})

	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.EventID, &event.Date, &event.Time, &event.Description, &event.Severity); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}
		table.Append([]string{
			event.Date,
			event.Time,
			event.Severity,
			shorten(orString(event.Description, ""), 70),
		})
	}

	table.Render()
	fmt.Fprintln(c.out)
}

func (c *Console) recomputeDTS() {
	color.Cyan("Recomputing DTS...")
	score, level := c.dimensionalThreatScore()
	color.Green("DTS recomputed: %d (%s)", score, level)
}
