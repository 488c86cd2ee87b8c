package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/calculator"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

type ProgressService struct {
	store domain.RecordStore
}

func NewProgressService(store domain.RecordStore) *ProgressService {
	return &ProgressService{
		store: store,
	}
}

type RecordSnapshotInput struct {
	UserID       string
	Measurements domain.Measurements
}

// RecordSnapshot upserts the user's profile and then appends a history entry.
// The two writes are not atomic: if the append fails the profile is already
// updated, and the whole call is reported as failed.
func (s *ProgressService) RecordSnapshot(ctx context.Context, input RecordSnapshotInput) (_ *domain.ProgressEntry, err error) {
	ctx, span := startSpan(ctx, "service.progress.record_snapshot")
	defer func() { endSpan(span, err) }()

	metrics, err := calculator.Recompute(input.Measurements)
	if err != nil {
		return nil, err
	}

	profile, err := domain.NewFitnessProfile(input.UserID, input.Measurements, metrics.FitnessScore)
	if err != nil {
		return nil, err
	}

	entry, err := domain.NewProgressEntry(input.UserID, input.Measurements, metrics.FitnessScore, metrics.BMI, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, domain.CollectionProfiles, input.UserID, profile.ToDocument()); err != nil {
		return nil, fmt.Errorf("progress service: upsert profile: %w", err)
	}

	id, err := s.store.Append(ctx, domain.ProgressCollection(input.UserID), entry.ToDocument())
	if err != nil {
		return nil, fmt.Errorf("progress service: append history: %w", err)
	}
	entry.ID = id

	span.SetAttributes(attribute.Int("fitness_score", metrics.FitnessScore))
	return entry, nil
}

// ListHistory returns the user's entries oldest first. sinceDays == 0 means the
// whole history; otherwise only entries on or after now - sinceDays are kept.
func (s *ProgressService) ListHistory(ctx context.Context, userID string, sinceDays int) (_ []*domain.ProgressEntry, err error) {
	ctx, span := startSpan(ctx, "service.progress.list_history")
	defer func() { endSpan(span, err) }()

	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	var cutoff time.Time
	if sinceDays != 0 {
		cutoff, err = domain.SinceCutoff(time.Now(), sinceDays)
		if err != nil {
			return nil, err
		}
	}

	records, err := s.store.QueryOrdered(ctx, domain.ProgressCollection(userID), domain.ProgressOrderField, domain.SortAsc)
	if err != nil {
		return nil, fmt.Errorf("progress service: list history: %w", err)
	}

	entries := make([]*domain.ProgressEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, domain.ProgressEntryFromRecord(userID, rec))
	}

	if sinceDays != 0 {
		entries = domain.FilterSince(entries, cutoff)
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}

// DeleteEntry is a no-op when the entry is already gone.
func (s *ProgressService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if userID == "" {
		return domain.ErrMissingUserID
	}
	if entryID == "" {
		return nil
	}

	if err := s.store.Delete(ctx, domain.ProgressCollection(userID), entryID); err != nil {
		return fmt.Errorf("progress service: delete entry: %w", err)
	}
	return nil
}

func (s *ProgressService) GetProfile(ctx context.Context, userID string) (*domain.FitnessProfile, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	rec, err := s.store.Get(ctx, domain.CollectionProfiles, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("progress service: load profile: %w", err)
	}

	return domain.FitnessProfileFromDocument(userID, rec.Data), nil
}

// Trend needs an existing profile; a missing one is a hard failure here.
func (s *ProgressService) Trend(ctx context.Context, userID string, sinceDays int) (_ *domain.ProgressTrend, err error) {
	ctx, span := startSpan(ctx, "service.progress.trend")
	defer func() { endSpan(span, err) }()

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ListHistory(ctx, userID, sinceDays)
	if err != nil {
		return nil, err
	}

	return domain.NewProgressTrend(profile, entries), nil
}
