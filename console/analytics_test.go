package console

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectThreatCounts(mock sqlmock.Sqlmock, severe, critical, active int) {
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS severe FROM Event`).
		WillReturnRows(sqlmock.NewRows([]string{"severe"}).AddRow(severe))
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS critical FROM Entity`).
		WillReturnRows(sqlmock.NewRows([]string{"critical"}).AddRow(critical))
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS active FROM Portal`).
		WillReturnRows(sqlmock.NewRows([]string{"active"}).AddRow(active))
}

func TestDimensionalThreatScore(t *testing.T) {
	tests := []struct {
		name                     string
		severe, critical, active int
		wantScore                int
		wantLevel                string
	}{
		{"elevated mix", 2, 1, 3, 32, "ELEVATED"},
		{"quiet", 0, 0, 0, 0, "NORMAL"},
		{"extreme", 6, 2, 0, 50, "EXTREME"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			expectThreatCounts(mock, tt.severe, tt.critical, tt.active)

			c := testConsole(db, "")
			score, level := c.dimensionalThreatScore()

			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantLevel, level)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPortalStabilityScanner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"Portal_ID", "Name", "Status", "origin_name", "destination_name", "event_count", "severe_count",
	}).
		AddRow(1, "The Gate", "Active", "Hawkins Lab", "UpsideDown Lab", 4, 2).
		AddRow(2, nil, "Closed", nil, nil, nil, nil)

	mock.ExpectQuery(`(?s)SELECT.*FROM Portal p.*LEFT JOIN Event e`).WillReturnRows(rows)

	c := testConsole(db, "")
	c.portalStabilityScanner()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityThreatAnalyzer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT Entity_ID, Name, Threat_Level, Origin_World FROM Entity").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"Entity_ID", "Name", "Threat_Level", "Origin_World"}).
			AddRow(7, "Demogorgon", "Critical", "UpsideDown"))
	mock.ExpectQuery(`(?s)SELECT ea\.Appearance_ID.*FROM Entity_Appearance ea`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"Appearance_ID", "Event_ID", "Start_Time", "End_Time", "Duration", "LocationName",
		}).
			AddRow(1, 10, "1983-11-06 22:00:00", "1983-11-06 22:45:00", 45, "Hawkins Lab").
			AddRow(2, 11, "1983-11-07 01:00:00", "1983-11-07 01:30:00", 30, nil))

	c := testConsole(db, "7\n")
	c.entityThreatAnalyzer()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityThreatAnalyzerRejectsNonNumericID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "demogorgon\n")
	c.entityThreatAnalyzer()

	// Handler aborts before issuing any query.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRealityDisturbanceMap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"Location_ID", "Name", "World_Type", "indicator"}).
		AddRow(3, "Downtown Hawkins", "Normal", 500).
		AddRow(2, "The Tunnels", "UpsideDown", 50).
		AddRow(1, "Mirror Woods", "UpsideDown", 5).
		AddRow(4, "Lover's Lake", "Normal", nil)

	mock.ExpectQuery(`(?s)SELECT.*COALESCE\(ul\.Distortion_Level, sl\.Population_Density, l\.Risk_Level\).*FROM Location l`).
		WillReturnRows(rows)

	c := testConsole(db, "")
	c.realityDisturbanceMap()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPsychicActivityDashboard(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT p\.Person_ID.*JOIN Psychic_Subject ps`).
		WillReturnRows(sqlmock.NewRows([]string{
			"Person_ID", "Name", "Power_Level", "Control_Score", "Ability_Type",
		}).AddRow(11, "Eleven", 95, 60, "Telekinesis"))
	mock.ExpectQuery("SELECT Exp_ID, Purpose, Date FROM Experiment").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"Exp_ID", "Purpose", "Date"}).
			AddRow(3, "Remote viewing trial", "1983-10-02"))
	mock.ExpectQuery(`(?s)SELECT e\.Event_ID.*JOIN Victim_Record vr`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"Event_ID", "Date", "Description"}))

	c := testConsole(db, "")
	c.psychicActivityDashboard()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemporalBreachTimeline(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT Event_ID, Date, Time, Description, Severity FROM Event ORDER BY Date, Time").
		WillReturnRows(sqlmock.NewRows([]string{"Event_ID", "Date", "Time", "Description", "Severity"}).
			AddRow(1, "1983-11-06", "22:15:00", "Will Byers disappears near Mirkwood", "Severe").
			AddRow(2, "1983-11-07", "09:00:00", nil, "Minor"))

	c := testConsole(db, "")
	c.temporalBreachTimeline()

	assert.NoError(t, mock.ExpectationsWereMet())
}
