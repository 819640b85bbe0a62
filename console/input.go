package console

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// prompt prints a label and reads one trimmed line of input.
func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// promptDefault reads a line, substituting def when the operator enters nothing.
func (c *Console) promptDefault(label, def string) string {
	if v := c.prompt(label); v != "" {
		return v
	}
	return def
}

func isNullLiteral(s string) bool {
	return strings.EqualFold(s, "NULL")
}

// parseOptionalID implements the create-form convention for foreign keys:
// blank or the literal NULL means no value, anything unparseable defaults to
// no value rather than aborting the handler.
func parseOptionalID(s string) sql.NullInt64 {
	if s == "" || isNullLiteral(s) {
		return sql.NullInt64{}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: n, Valid: true}
}

// parseOptionalInt is parseOptionalID for plain numeric columns (ages, levels).
func parseOptionalInt(s string) sql.NullInt64 {
	return parseOptionalID(s)
}

func parseOptionalFloat(s string) sql.NullFloat64 {
	if s == "" || isNullLiteral(s) {
		return sql.NullFloat64{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// reviseID implements the update-form convention: blank keeps the current
// value, the literal NULL clears it, unparseable input keeps the current value.
func reviseID(s string, current sql.NullInt64) sql.NullInt64 {
	if s == "" {
		return current
	}
	if isNullLiteral(s) {
		return sql.NullInt64{}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return current
	}
	return sql.NullInt64{Int64: n, Valid: true}
}

func reviseInt(s string, current sql.NullInt64) sql.NullInt64 {
	return reviseID(s, current)
}

func reviseFloat(s string, current sql.NullFloat64) sql.NullFloat64 {
	if s == "" {
		return current
	}
	if isNullLiteral(s) {
		return sql.NullFloat64{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return current
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// reviseString keeps the current value on blank input.
func reviseString(s string, current string) string {
	if s == "" {
		return current
	}
	return s
}

func reviseNullString(s string, current sql.NullString) sql.NullString {
	if s == "" {
		return current
	}
	if isNullLiteral(s) {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Display fallbacks for nullable columns.

func orString(s sql.NullString, fallback string) string {
	if s.Valid {
		return s.String
	}
	return fallback
}

func orInt64(i sql.NullInt64) int64 {
	if i.Valid {
		return i.Int64
	}
	return 0
}

func displayID(i sql.NullInt64) string {
	if i.Valid {
		return strconv.FormatInt(i.Int64, 10)
	}
	return "NULL"
}

// shorten truncates s to at most n runes on a word boundary where possible,
// appending "..." when anything was cut.
func shorten(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	cut := s[:n-3]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
