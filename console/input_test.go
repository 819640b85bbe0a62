package console

import (
	"bufio"
	"database/sql"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testConsole wires a Console to scripted input and discarded output.
func testConsole(db *sql.DB, input string) *Console {
	return &Console{
		db:  db,
		in:  bufio.NewScanner(strings.NewReader(input)),
		out: io.Discard,
	}
}

func TestParseOptionalID(t *testing.T) {
	assert.False(t, parseOptionalID("").Valid)
	assert.False(t, parseOptionalID("NULL").Valid)
	assert.False(t, parseOptionalID("null").Valid)
	assert.False(t, parseOptionalID("not a number").Valid)

	got := parseOptionalID("42")
	assert.True(t, got.Valid)
	assert.Equal(t, int64(42), got.Int64)
}

func TestParseOptionalFloat(t *testing.T) {
	assert.False(t, parseOptionalFloat("").Valid)
	assert.False(t, parseOptionalFloat("NULL").Valid)
	assert.False(t, parseOptionalFloat("abc").Valid)

	got := parseOptionalFloat("3.25")
	assert.True(t, got.Valid)
	assert.Equal(t, 3.25, got.Float64)
}

func TestReviseID(t *testing.T) {
	current := sql.NullInt64{Int64: 7, Valid: true}

	assert.Equal(t, current, reviseID("", current), "blank keeps current")
	assert.False(t, reviseID("NULL", current).Valid, "NULL literal clears")
	assert.Equal(t, current, reviseID("garbage", current), "unparseable keeps current")

	got := reviseID("9", current)
	assert.True(t, got.Valid)
	assert.Equal(t, int64(9), got.Int64)
}

func TestReviseFloat(t *testing.T) {
	current := sql.NullFloat64{Float64: 1.5, Valid: true}

	assert.Equal(t, current, reviseFloat("", current))
	assert.False(t, reviseFloat("null", current).Valid)
	assert.Equal(t, current, reviseFloat("x", current))

	got := reviseFloat("-2.75", current)
	assert.True(t, got.Valid)
	assert.Equal(t, -2.75, got.Float64)
}

func TestReviseNullString(t *testing.T) {
	current := sql.NullString{String: "Hawkins Lab", Valid: true}

	assert.Equal(t, current, reviseNullString("", current))
	assert.False(t, reviseNullString("NULL", current).Valid)

	got := reviseNullString("DOE", current)
	assert.True(t, got.Valid)
	assert.Equal(t, "DOE", got.String)
}

func TestPrompt(t *testing.T) {
	c := testConsole(nil, "  hello world  \nsecond\n")
	assert.Equal(t, "hello world", c.prompt("> "))
	assert.Equal(t, "second", c.prompt("> "))
	assert.Equal(t, "", c.prompt("> "), "exhausted input reads as blank")
}

func TestPromptDefault(t *testing.T) {
	c := testConsole(nil, "\nSevere\n")
	assert.Equal(t, "Moderate", c.promptDefault("Severity: ", "Moderate"))
	assert.Equal(t, "Severe", c.promptDefault("Severity: ", "Moderate"))
}

func TestIsAllDigits(t *testing.T) {
	assert.True(t, isAllDigits("5"))
	assert.True(t, isAllDigits("007"))
	assert.False(t, isAllDigits(""))
	assert.False(t, isAllDigits("-5"))
	assert.False(t, isAllDigits("5.0"))
	assert.False(t, isAllDigits("demogorgon"))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short", 10))
	assert.Equal(t, "gate under...", shorten("gate under the pool", 17))
	got := shorten("a breach opened beneath the eastern stairwell of the lab", 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.True(t, strings.HasSuffix(got, "..."))
	// Collapses runs of whitespace like the report footers contain.
	assert.Equal(t, "a b c", shorten("a \n b\t c", 10))
}
