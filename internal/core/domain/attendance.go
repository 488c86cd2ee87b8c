package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidStatus   = validationError("attendance status must be Present or Absent")
	ErrInvalidDateKey  = validationError("attendance date must be formatted as YYYY-MM-DD")
	ErrInvalidMonth    = validationError("month must be between 1 and 12")
	ErrAttendanceScope = fmt.Errorf("%w: attendance can only be marked by the member or an admin", ErrForbidden)
)

type AttendanceStatus string

const (
	StatusPresent   AttendanceStatus = "Present"
	StatusAbsent    AttendanceStatus = "Absent"
	StatusNotMarked AttendanceStatus = "Not Marked"
)

func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch AttendanceStatus(strings.TrimSpace(s)) {
	case StatusPresent:
		return StatusPresent, nil
	case StatusAbsent:
		return StatusAbsent, nil
	default:
		return "", ErrInvalidStatus
	}
}

// DateKey is the UTC calendar day of t, the key used in attendance records.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// ParseDateKey validates a YYYY-MM-DD key and returns it in canonical form.
func ParseDateKey(s string) (string, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidDateKey
	}
	return DateKey(t), nil
}

// AttendanceRecord is the sparse per-user date -> status mapping.
// Dates missing from Records are implicitly Not Marked.
type AttendanceRecord struct {
	UserID  string                      `json:"userId"`
	Records map[string]AttendanceStatus `json:"records"`
}

func (r *AttendanceRecord) StatusOn(date string) AttendanceStatus {
	if r == nil {
		return StatusNotMarked
	}
	if s, ok := r.Records[date]; ok {
		return s
	}
	return StatusNotMarked
}

// AttendanceFromDocument reads a stored record. Unknown values are skipped.
func AttendanceFromDocument(userID string, doc Document) *AttendanceRecord {
	rec := &AttendanceRecord{
		UserID:  userID,
		Records: make(map[string]AttendanceStatus, len(doc)),
	}
	for date, v := range doc {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if status, err := ParseAttendanceStatus(s); err == nil {
			rec.Records[date] = status
		}
	}
	return rec
}

type DayStatus struct {
	Date   string           `json:"date"`
	Status AttendanceStatus `json:"status"`
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks is the weekday index (Sunday = 0) of the first day of the month.
func LeadingBlanks(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// BuildMonthGrid returns one entry per day of the month, Not Marked by default.
func BuildMonthGrid(records map[string]AttendanceStatus, year int, month time.Month) ([]DayStatus, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}

	days := DaysInMonth(year, month)
	grid := make([]DayStatus, 0, days)

	for day := 1; day <= days; day++ {
		date := DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))

		status, ok := records[date]
		if !ok {
			status = StatusNotMarked
		}
		grid = append(grid, DayStatus{Date: date, Status: status})
	}

	return grid, nil
}

type AttendanceSummary struct {
	Date         string `json:"date"`
	PresentCount int    `json:"presentCount"`
	AbsentCount  int    `json:"absentCount"`
	TotalUsers   int    `json:"totalUsers"`
}

// Summarize counts exact status matches for date. Unmarked users count toward neither.
func Summarize(users []*AttendanceRecord, date string) AttendanceSummary {
	summary := AttendanceSummary{Date: date, TotalUsers: len(users)}

	for _, u := range users {
		switch u.StatusOn(date) {
		case StatusPresent:
			summary.PresentCount++
		case StatusAbsent:
			summary.AbsentCount++
		}
	}

	return summary
}

type RosterEntry struct {
	UserID string           `json:"userId"`
	Status AttendanceStatus `json:"status"`
}

type Roster struct {
	Summary AttendanceSummary `json:"summary"`
	Members []RosterEntry     `json:"members"`
}

// NewRoster lists every user's status on date, ordered by user id.
func NewRoster(users []*AttendanceRecord, date string) *Roster {
	sorted := make([]*AttendanceRecord, len(users))
	copy(sorted, users)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UserID < sorted[j].UserID
	})

	members := make([]RosterEntry, 0, len(sorted))
	for _, u := range sorted {
		members = append(members, RosterEntry{UserID: u.UserID, Status: u.StatusOn(date)})
	}

	return &Roster{
		Summary: Summarize(sorted, date),
		Members: members,
	}
}

// MonthCalendar is the per-user attendance view for one month.
type MonthCalendar struct {
	Year          int         `json:"year"`
	Month         int         `json:"month"`
	LeadingBlanks int         `json:"leadingBlanks"`
	Today         DayStatus   `json:"today"`
	Days          []DayStatus `json:"days"`
}
