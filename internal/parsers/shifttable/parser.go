package shifttable

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
	"github.com/custodia-labs/shiftsync/internal/logger"
)

// Ensure Parser implements the interface.
var _ driven.ScheduleParser = (*Parser)(nil)

// headerLabels are the column labels a schedule table must carry,
// matched case-insensitively.
var headerLabels = []string{"date", "time", "department", "job"}

// Pre-compiled regular expressions for field extraction.
var (
	// publishedRange matches the "published from mm/dd/yyyy to
	// mm/dd/yyyy" header; group 1 is the first date's year.
	publishedRange = regexp.MustCompile(`(?i)published\s+from\s+\d{1,2}/\d{1,2}/(\d{4})`)
	// datePair matches the mm/dd pair in a date cell like "Mon 10/07".
	datePair = regexp.MustCompile(`(\d{1,2})\s*/\s*(\d{1,2})`)
	// timeOfDay matches one HH:MM half of a time range.
	timeOfDay = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)
	// dayOff is the sentinel for rows that produce no shift.
	dayOff = regexp.MustCompile(`(?i)^\s*day\s*off\s*$`)
	// dashes normalises en- and em-dashes to a plain hyphen before the
	// time range is split.
	dashes = strings.NewReplacer("–", "-", "—", "-")
)

// Parser turns a notification body into shifts.
type Parser struct {
	extractor driven.TableExtractor
	title     string

	// now is the clock used for the current-year fallback; injectable
	// for tests.
	now func() time.Time
}

// New creates a parser that labels every emitted shift with title.
func New(extractor driven.TableExtractor, title string) *Parser {
	return &Parser{
		extractor: extractor,
		title:     title,
		now:       time.Now,
	}
}

// Parse extracts shifts from a raw HTML body, localised to loc, in the
// order the rows appear (the table is assumed chronological and is not
// re-sorted). Malformed rows are skipped; a body without a matching
// table yields no shifts.
func (p *Parser) Parse(htmlBody string, loc *time.Location) []domain.Shift {
	year := p.referenceYear(htmlBody, loc)

	rows := p.extractor.Extract(htmlBody, headerLabels)
	if rows == nil {
		logger.Debug("No schedule table found in message body")
		return nil
	}

	var shifts []domain.Shift
	for _, row := range rows {
		shift, ok := p.parseRow(row, year, loc)
		if !ok {
			continue
		}
		shifts = append(shifts, shift)
	}
	return shifts
}

// referenceYear reads the year off the "published from" header. When
// the header is absent it falls back to the current year in loc; this
// heuristic is wrong for schedules spanning a year boundary processed
// late, and is preserved as documented behaviour.
func (p *Parser) referenceYear(htmlBody string, loc *time.Location) int {
	if m := publishedRange.FindStringSubmatch(StripTags(htmlBody)); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return year
		}
	}
	return p.now().In(loc).Year()
}

// parseRow converts one table row to a shift. Returns false for day-off
// rows and for anything malformed.
func (p *Parser) parseRow(row driven.TableRow, year int, loc *time.Location) (domain.Shift, bool) {
	if dayOff.MatchString(row.TimeCell) {
		return domain.Shift{}, false
	}

	dm := datePair.FindStringSubmatch(row.DateCell)
	if dm == nil {
		logger.Debug("Skipping row with unparseable date cell %q", row.DateCell)
		return domain.Shift{}, false
	}
	month, _ := strconv.Atoi(dm[1])
	day, _ := strconv.Atoi(dm[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return domain.Shift{}, false
	}

	halves := strings.Split(dashes.Replace(row.TimeCell), "-")
	if len(halves) != 2 {
		logger.Debug("Skipping row with unparseable time cell %q", row.TimeCell)
		return domain.Shift{}, false
	}

	start, ok := atTime(year, month, day, halves[0], loc)
	if !ok {
		return domain.Shift{}, false
	}
	end, ok := atTime(year, month, day, halves[1], loc)
	if !ok {
		return domain.Shift{}, false
	}

	shift := domain.Shift{
		Start: start,
		End:   end,
		Title: p.title,
	}
	if !shift.Valid() {
		return domain.Shift{}, false
	}
	return shift, true
}

// atTime combines the row date with one HH:MM half of the time range.
func atTime(year, month, day int, clock string, loc *time.Location) (time.Time, bool) {
	m := timeOfDay.FindStringSubmatch(clock)
	if m == nil {
		return time.Time{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	// time.Date normalises impossible dates (02/30 becomes March 1);
	// such rows are malformed and must be dropped, not shifted.
	if ts.Day() != day || ts.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return ts, true
}
