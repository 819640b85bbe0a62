package console

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertEventCommits(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// date, time, description, outcome (default), severity (default),
	// location, portal (NULL literal)
	c := testConsole(db, "1983-11-06\n22:15:00\nGate flicker in the east wing\n\n\n3\nNULL\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Event").
		WithArgs("1983-11-06", "22:15:00", "Gate flicker in the east wing",
			"Ongoing", "Moderate", int64(3), nil).
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	c.insertEvent()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEventRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "1983-11-06\n22:15:00\ndesc\n\n\n999\n\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Event").
		WillReturnError(errors.New("foreign key constraint fails"))
	mock.ExpectRollback()

	c.insertEvent()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePersonWithSubtypeCommitsTogether(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// name, role, age, affiliation, status, supervisor, aliases, clearance
	c := testConsole(db, "Sam Owens\nResearcher\n55\nHNL\n\n\n\nLevel 4\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Person").
		WithArgs("Sam Owens", "Researcher", int64(55), "Active", "HNL", nil, nil).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectExec("INSERT INTO Researcher").
		WithArgs(int64(31), "Level 4").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.createPerson()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePersonSubtypeFailureRollsBackPersonRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "Eleven\nPsychic_Subject\n\nHNL\n\n\n\nTelekinesis\n90\n40\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Person").
		WithArgs("Eleven", "Psychic_Subject", nil, "Active", "HNL", nil, nil).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO Psychic_Subject").
		WithArgs(int64(11), "Telekinesis", int64(90), int64(40)).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	c.createPerson()

	// Rollback is the mock's last expectation: no partial Person row survives.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReportWritesDetailsAtomically(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// date, authored_by, verified_by, documents_artifact, summary, verdict
	c := testConsole(db, "1984-02-01\n4\nNULL\n2\nLights flickering across town\n\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Report ").
		WithArgs("1984-02-01", 4, nil, int64(2)).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO Report_Details").
		WithArgs(int64(7), "Lights flickering across town", "Unclear").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.createReport()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReportRejectsNonNumericAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "1984-02-01\nnobody\n\n\nsummary\n\n")

	// No Begin expected: the handler aborts before touching the database.
	c.createReport()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArtifactRequiresConfirmation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "9\nno\n")

	c.deleteArtifact()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArtifactHardDeletes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "9\nYES\n")

	mock.ExpectQuery("SELECT Artifact_ID, Name FROM Artifact").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"Artifact_ID", "Name"}).AddRow(9, "Flayed vine sample"))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM Artifact").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.deleteArtifact()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEventBlankKeepsAndNullClears(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// event id, outcome (blank keeps), severity (new), portal (NULL clears),
	// location (blank keeps)
	c := testConsole(db, "5\n\nSevere\nNULL\n\n")

	mock.ExpectQuery("SELECT Event_ID, Date, Time, Description, Outcome, Severity, Location_ID, Portal_ID FROM Event").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{
			"Event_ID", "Date", "Time", "Description", "Outcome", "Severity", "Location_ID", "Portal_ID",
		}).AddRow(5, "1983-11-06", "22:15:00", "Gate flicker", "Ongoing", "Moderate", 3, 2))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE Event SET").
		WithArgs("Ongoing", "Severe", nil, int64(3), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.updateEvent()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEventNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "404\n")

	mock.ExpectQuery("SELECT Event_ID, Date, Time, Description, Outcome, Severity, Location_ID, Portal_ID FROM Event").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{
			"Event_ID", "Date", "Time", "Description", "Outcome", "Severity", "Location_ID", "Portal_ID",
		}))

	c.updateEvent()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveEventSetsContainedAndSuffix(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "5\ncase closed\n")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE Event SET Outcome = 'Contained', Description = CONCAT`).
		WithArgs("case closed", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.archiveEvent()

	assert.NoError(t, mock.ExpectationsWereMet())
}
