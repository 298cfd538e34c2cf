package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the fixed day-month-year layout report dates use,
// e.g. "31AUG2019". Parsing accepts any month casing; formatted
// output is always uppercase.
const DateLayout = "02Jan2006"

// Request is the raw run payload as submitted by the UI.
type Request struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Lines    string `json:"lines"`
	Country  string `json:"country"`
}

// Params is a validated run request.
type Params struct {
	ReportDate time.Time
	PrevDate   time.Time // zero when no previous date was supplied
	Lines      []int
	Country    string
}

// HasPrev reports whether a previous reporting date was supplied.
func (p Params) HasPrev() bool {
	return !p.PrevDate.IsZero()
}

// Parse validates the raw request and returns the parsed parameters.
// Validation is eager: the first invalid field rejects the whole
// request, and there is no partial success.
func (r Request) Parse() (Params, error) {
	reportDate, err := ParseDate(r.FromDate)
	if err != nil {
		return Params{}, fmt.Errorf("from_date must be DDMMMYYYY, e.g., 31AUG2019")
	}

	var prevDate time.Time
	if r.ToDate != "" {
		prevDate, err = ParseDate(r.ToDate)
		if err != nil {
			return Params{}, fmt.Errorf("to_date must be DDMMMYYYY, e.g., 31JUL2019")
		}
	}

	lines, err := parseLines(r.Lines)
	if err != nil {
		return Params{}, err
	}

	country := strings.ToUpper(strings.TrimSpace(r.Country))
	if len(country) != 2 && len(country) != 3 {
		return Params{}, fmt.Errorf("country must be ISO code like 'SG' or 'SGP'")
	}

	return Params{
		ReportDate: reportDate,
		PrevDate:   prevDate,
		Lines:      lines,
		Country:    country,
	}, nil
}

// ParseDate parses a DDMMMYYYY date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.ToUpper(s))
}

// FormatDate renders a date in the uppercase DDMMMYYYY form the
// dataset uses.
func FormatDate(t time.Time) string {
	return strings.ToUpper(t.Format(DateLayout))
}

// parseLines parses a comma-separated list of line numbers. Blank
// tokens are dropped; at least one integer token must remain and
// input order is preserved.
func parseLines(s string) ([]int, error) {
	var lines []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("lines must be comma-separated integers, e.g., '6,17'")
		}
		lines = append(lines, n)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("lines must be comma-separated integers, e.g., '6,17'")
	}

	return lines, nil
}
