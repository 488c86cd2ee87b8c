package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

type AttendanceService struct {
	store domain.RecordStore
}

func NewAttendanceService(store domain.RecordStore) *AttendanceService {
	return &AttendanceService{
		store: store,
	}
}

type MarkAttendanceInput struct {
	Actor  domain.Actor
	UserID string
	Date   string
	Status string
}

// Mark writes a single date key into the user's record, leaving every other
// date untouched.
func (s *AttendanceService) Mark(ctx context.Context, input MarkAttendanceInput) (_ *domain.DayStatus, err error) {
	ctx, span := startSpan(ctx, "service.attendance.mark")
	defer func() { endSpan(span, err) }()

	if input.UserID == "" {
		return nil, domain.ErrMissingUserID
	}
	if !input.Actor.CanActFor(input.UserID) {
		return nil, domain.ErrAttendanceScope
	}

	date, err := domain.ParseDateKey(input.Date)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseAttendanceStatus(input.Status)
	if err != nil {
		return nil, err
	}

	partial := domain.Document{date: string(status)}
	if err := s.store.Merge(ctx, domain.CollectionAttendance, input.UserID, partial); err != nil {
		return nil, fmt.Errorf("attendance service: mark: %w", err)
	}

	span.SetAttributes(attribute.String("date", date), attribute.String("status", string(status)))
	return &domain.DayStatus{Date: date, Status: status}, nil
}

// GetRecord returns the user's record; a user that was never marked gets an empty one.
func (s *AttendanceService) GetRecord(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	rec, err := s.store.Get(ctx, domain.CollectionAttendance, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AttendanceFromDocument(userID, nil), nil
		}
		return nil, fmt.Errorf("attendance service: load record: %w", err)
	}

	return domain.AttendanceFromDocument(userID, rec.Data), nil
}

func (s *AttendanceService) Calendar(ctx context.Context, userID string, year int, month time.Month) (_ *domain.MonthCalendar, err error) {
	ctx, span := startSpan(ctx, "service.attendance.calendar")
	defer func() { endSpan(span, err) }()

	record, err := s.GetRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	grid, err := domain.BuildMonthGrid(record.Records, year, month)
	if err != nil {
		return nil, err
	}

	today := domain.DateKey(time.Now())

	return &domain.MonthCalendar{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: domain.LeadingBlanks(year, month),
		Today:         domain.DayStatus{Date: today, Status: record.StatusOn(today)},
		Days:          grid,
	}, nil
}

// Roster lists every user the engine knows about (anyone with an attendance
// record or a fitness profile) with their status on date. Admin only.
// Roles are carried by tokens, not stored, so the only admin id known here is
// the caller's own; it is left off the roster.
func (s *AttendanceService) Roster(ctx context.Context, actor domain.Actor, date string) (_ *domain.Roster, err error) {
	ctx, span := startSpan(ctx, "service.attendance.roster")
	defer func() { endSpan(span, err) }()

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: roster requires the admin role", domain.ErrForbidden)
	}

	date, err = domain.ParseDateKey(date)
	if err != nil {
		return nil, err
	}

	attendance, err := s.store.QueryOrdered(ctx, domain.CollectionAttendance, "", domain.SortAsc)
	if err != nil {
		return nil, fmt.Errorf("attendance service: list attendance: %w", err)
	}

	profiles, err := s.store.QueryOrdered(ctx, domain.CollectionProfiles, "", domain.SortAsc)
	if err != nil {
		return nil, fmt.Errorf("attendance service: list profiles: %w", err)
	}

	seen := make(map[string]bool, len(attendance)+len(profiles)+1)
	seen[actor.UserID] = true
	users := make([]*domain.AttendanceRecord, 0, len(attendance)+len(profiles))

	for _, rec := range attendance {
		if seen[rec.Key] {
			continue
		}
		seen[rec.Key] = true
		users = append(users, domain.AttendanceFromDocument(rec.Key, rec.Data))
	}
	for _, rec := range profiles {
		if !seen[rec.Key] {
			seen[rec.Key] = true
			users = append(users, domain.AttendanceFromDocument(rec.Key, nil))
		}
	}

	roster := domain.NewRoster(users, date)
	span.SetAttributes(attribute.Int("total_users", roster.Summary.TotalUsers))
	return roster, nil
}
