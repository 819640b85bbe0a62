package console

import (
	"fmt"
	"log"

	"github.com/fatih/color"

	"github.com/hnl-ops/strangerdb/models"
)

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// queryFor appends the exact-ID clause and argument when the query text is
// purely numeric, so "5" matches both IDs and substrings.
func queryFor(base, idColumn string, numeric bool, likeArgs []interface{}, id int64) (string, []interface{}) {
	idClause := ""
	args := likeArgs
	if numeric {
		idClause = fmt.Sprintf("OR %s = ?", idColumn)
		args = append(append([]interface{}{}, likeArgs...), id)
	}
	return fmt.Sprintf(base, idClause), args
}

func repeatArg(arg interface{}, n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = arg
	}
	return args
}

// globalSearch substring-matches one free-text query across the textual
// columns of eight tables, capped at 20 rows each.
func (c *Console) globalSearch() {
	color.Cyan("Global Search")
	query := c.prompt("Search query (text or ID): ")
	if query == "" {
		color.Red("Empty query.")
		return
	}

	like := "%" + query + "%"
	numeric := isAllDigits(query)
	var numericID int64
	if numeric {
		fmt.Sscanf(query, "%d", &numericID)
	}

	// Entities
	sqlText, args := queryFor(`
        SELECT Entity_ID, Name, Species, Threat_Level, Origin_World
        FROM Entity
        WHERE (
            Name LIKE ?
            OR Species LIKE ?
            OR Threat_Level LIKE ?
            OR Origin_World LIKE ?
        )
        %s
        LIMIT 20`, "Entity_ID", numeric, repeatArg(like, 4), numericID)
	var entities []models.Entity
	if rows, err := c.db.Query(sqlText, args...); err != nil {
		color.Red("Error searching: %v", err)
		return
	} else {
		for rows.Next() {
			var e models.Entity
			if err := rows.Scan(&e.EntityID, &e.Name, &e.Species, &e.ThreatLevel, &e.OriginWorld); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			entities = append(entities, e)
		}
		rows.Close()
	}

	// Locations
	sqlText, args = queryFor(`
        SELECT Location_ID, Name, World_Type, Description
        FROM Location
        WHERE (
            Name LIKE ?
            OR World_Type LIKE ?
            OR IFNULL(Description,'') LIKE ?
        )
        %s
        LIMIT 20`, "Location_ID", numeric, repeatArg(like, 3), numericID)
	var locations []models.Location
	if rows, err := c.db.Query(sqlText, args...); err != nil {
		color.Red("Error searching: %v", err)
		return
	} else {
		for rows.Next() {
			var l models.Location
			if err := rows.Scan(&l.LocationID, &l.Name, &l.WorldType, &l.Description); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			locations = append(locations, l)
		}
		rows.Close()
	}

	// Events
	sqlText, args = queryFor(`
        SELECT Event_ID, Date, Time, Description, Outcome, Severity
        FROM Event
        WHERE (
            IFNULL(Description,'') LIKE ?
            OR Outcome LIKE ?
            OR Severity LIKE ?
        )
        %s
        LIMIT 20`, "Event_ID", numeric, repeatArg(like, 3), numericID)
	var events []models.Event
	if rows, err := c.db.Query(sqlText, args...); err != nil {
		color.Red("Error searching: %v", err)
		return
	} else {
		for rows.Next() {
			var e models.Event
			if err := rows.Scan(&e.EventID, &e.Date, &e.Time, &e.Description, &e.Outcome, &e.Severity); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			events = append(events, e)
		}
		rows.Close()
	}

	// Persons
	sqlText, args = queryFor(`
        SELECT Person_ID, Name, Role, Status, Affiliation, Known_Aliases
        FROM Person
        WHERE (
            Name LIKE ?
            OR Role LIKE ?
            OR Status LIKE ?
            OR IFNULL(Affiliation,'') LIKE ?
            OR IFNULL(Known_Aliases,'') LIKE ?
        )
        %s
        LIMIT 20`, "Person_ID", numeric, repeatArg(like, 5), numericID)
	var persons []models.Person
	if rows, err := c.db.Query(sqlText, args...); err != nil {
		color.Red("Error searching: %v", err)
		return
	} else {
		for rows.Next() {
			var p models.Person
			if err := rows.Scan(&p.PersonID, &p.Name, &p.Role, &p.Status, &p.Affiliation, &p.KnownAliases); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			persons = append(persons, p)
		}
		rows.Close()
	}

	// Portals
	sqlText, args = queryFor(`
        SELECT Portal_ID, Name, Status
        FROM Portal
        WHERE (
            IFNULL(Name,'') LIKE ?
            OR Status LIKE ?
        )
        %s
        LIMIT 20`, "Portal_ID", numeric, repeatArg(like, 2), numericID)
	var portals []models.Portal
	if rows, err := c.db.Query(sqlText, args...); err != nil {
		color.Red("Error searching: %v", err)
		return
	} else {
		for rows.Next() {
			var p models.Portal
			if err := rows.Scan(&p.PortalID, &p.Name, &p.Status); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			portals = append(portals, p)
		}
		rows.Close()
	}

	// Artifacts
	sqlText, args = queryFor(`
        SELECT Artifact_ID, Name, Type, Anomaly_Level
        FROM Artifact
        WHERE (
            IFNULL(Name,'') LIKE ?
            OR Type LIKE ?
        )
        %s
        LIMIT 20`, "Artifact_ID", numeric, repeatArg(like, 2), numericID)
	var artifacts []models.Artifact
	if rows, err := c.db.Query(sqlText, args...); err != nil {
		color.Red("Error searching: %v", err)
		return
	} else {
		for rows.Next() {
			var a models.Artifact
			if err := rows.Scan(&a.ArtifactID, &a.Name, &a.Type, &a.AnomalyLevel); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			artifacts = append(artifacts, a)
		}
		rows.Close()
	}

	// Reports
	type reportHit struct {
		report  models.Report
		details models.ReportDetails
	}
	sqlText, args = queryFor(`
        SELECT r.Report_ID, r.Date, rd.Summary, rd.Verdict
        FROM Report r
        LEFT JOIN Report_Details rd ON r.Report_ID = rd.Report_ID
        WHERE (
            IFNULL(rd.Summary,'') LIKE ?
            OR IFNULL(rd.Verdict,'') LIKE ?
        )
        %s
        LIMIT 20`, "r.Report_ID", numeric, repeatArg(like, 2), numericID)
	var reports []reportHit
	if rows, err := c.db.Query(sqlText, args...); err != nil {
		color.Red("Error searching: %v", err)
		return
	} else {
		for rows.Next() {
			var r reportHit
			if err := rows.Scan(&r.report.ReportID, &r.report.Date, &r.details.Summary, &r.details.Verdict); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			reports = append(reports, r)
		}
		rows.Close()
	}

	// Experiments
	sqlText, args = queryFor(`
        SELECT Exp_ID, Purpose, Confidentiality, Result, Date
        FROM Experiment
        WHERE (
            IFNULL(Purpose,'') LIKE ?
            OR IFNULL(Result,'') LIKE ?
            OR Confidentiality LIKE ?
        )
        %s
        LIMIT 20`, "Exp_ID", numeric, repeatArg(like, 3), numericID)
	var experiments []models.Experiment
	if rows, err := c.db.Query(sqlText, args...); err != nil {
		color.Red("Error searching: %v", err)
		return
	} else {
		for rows.Next() {
			var x models.Experiment
			if err := rows.Scan(&x.ExpID, &x.Purpose, &x.Confidentiality, &x.Result, &x.Date); err != nil {
				log.Printf("Error scanning row: %v", err)
				continue
			}
			experiments = append(experiments, x)
		}
		rows.Close()
	}

	color.Magenta("\n=== Search Results for '%s' ===", query)

	if len(entities) > 0 {
		color.Yellow("\nEntities:")
		for _, e := range entities {
			fmt.Fprintf(c.out, "  [%d] %s · %s · %s (%s)\n", e.EntityID, e.Name, e.Species, e.ThreatLevel, e.OriginWorld)
		}
	}
	if len(locations) > 0 {
		color.Yellow("\nLocations:")
		for _, l := range locations {
			fmt.Fprintf(c.out, "  [%d] %s (%s) - %s\n", l.LocationID, l.Name, l.WorldType, shorten(orString(l.Description, ""), 40))
		}
	}
	if len(events) > 0 {
		color.Yellow("\nEvents:")
		for _, e := range events {
			fmt.Fprintf(c.out, "  [%d] %s %s - %s [%s/%s]\n", e.EventID, e.Date, e.Time, shorten(orString(e.Description, ""), 50), e.Severity, e.Outcome)
		}
	}
	if len(persons) > 0 {
		color.Yellow("\nPersons:")
		for _, p := range persons {
			alias := ""
			if p.KnownAliases.Valid {
				alias = fmt.Sprintf(" · aka %s", p.KnownAliases.String)
			}
			fmt.Fprintf(c.out, "  [%d] %s - %s (%s, %s)%s\n", p.PersonID, p.Name, p.Role, p.Status, orString(p.Affiliation, "N/A"), alias)
		}
	}
	if len(portals) > 0 {
		color.Yellow("\nPortals:")
		for _, p := range portals {
			fmt.Fprintf(c.out, "  [%d] %s - %s\n", p.PortalID, orString(p.Name, "N/A"), p.Status)
		}
	}
	if len(artifacts) > 0 {
		color.Yellow("\nArtifacts:")
		for _, a := range artifacts {
			fmt.Fprintf(c.out, "  [%d] %s - %s (Anomaly %d)\n", a.ArtifactID, orString(a.Name, "N/A"), a.Type, orInt64(a.AnomalyLevel))
		}
	}
	if len(reports) > 0 {
		color.Yellow("\nReports:")
		for _, r := range reports {
			fmt.Fprintf(c.out, "  [%d] %s - %s [%s]\n", r.report.ReportID, r.report.Date, shorten(orString(r.details.Summary, ""), 60), orString(r.details.Verdict, "Unclear"))
		}
	}
	if len(experiments) > 0 {
		color.Yellow("\nExperiments:")
		for _, x := range experiments {
			fmt.Fprintf(c.out, "  [%d] %s - %s (%s)\n", x.ExpID, x.Date, shorten(x.Purpose, 60), x.Confidentiality)
		}
	}

	if len(entities)+len(locations)+len(events)+len(persons)+len(portals)+len(artifacts)+len(reports)+len(experiments) == 0 {
		color.Red("No results found.")
	}
	fmt.Fprintln(c.out)
}
