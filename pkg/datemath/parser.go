package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pharmacy-ops/pkg/civil"
)

// Parser converts relative date expressions to civil dates against the
// service clock: "today", "tomorrow", "yesterday", "in 3 days", "next monday",
// or an explicit 2006-01-02 date.
type Parser struct {
	clock civil.Clock
}

// NewParser creates a parser resolving relative expressions against clock.
func NewParser(clock civil.Clock) *Parser {
	return &Parser{clock: clock}
}

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parse resolves expr to a civil date. The empty expression means today.
func (p *Parser) Parse(expr string) (civil.Date, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	today := p.clock.Today()

	switch expr {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, today)
	}
	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, today)
	}

	return civil.ParseDate(expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(expr string, today civil.Date) (civil.Date, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return civil.Date{}, fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDays(amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDays(amount * 7), nil
	case strings.HasPrefix(unit, "month"):
		return civil.DateOf(today.Midnight(time.UTC).AddDate(0, amount, 0)), nil
	}

	return civil.Date{}, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// "Next" is strict: from a Monday, "next monday" is seven days out.
func (p *Parser) parseNextWeekday(expr string, today civil.Date) (civil.Date, error) {
	dayName := strings.TrimPrefix(expr, "next ")
	target, ok := weekdayNames[dayName]
	if !ok {
		return civil.Date{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDays(daysUntil), nil
}
