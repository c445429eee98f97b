package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driving"
	"github.com/custodia-labs/shiftsync/internal/logger"
)

// Ensure SyncService implements the interface.
var _ driving.ScheduleSyncer = (*SyncService)(nil)

// ShiftUpserter reconciles one shift against the event store.
// Satisfied by *Reconciler; narrowed to an interface for testing.
type ShiftUpserter interface {
	Upsert(ctx context.Context, shift domain.Shift) (domain.UpsertOutcome, error)
}

// SyncService walks a bounded window of recent notification emails and
// reconciles every parsed shift into the calendar.
type SyncService struct {
	mailbox    driven.MessageSource
	parser     driven.ScheduleParser
	reconciler ShiftUpserter
	runs       driven.RunStore
	settings   *domain.Settings
	loc        *time.Location
}

// NewSyncService creates the batch driver. The run store is optional;
// nil disables run history.
func NewSyncService(
	mailbox driven.MessageSource,
	parser driven.ScheduleParser,
	reconciler ShiftUpserter,
	runs driven.RunStore,
	settings *domain.Settings,
	loc *time.Location,
) *SyncService {
	return &SyncService{
		mailbox:    mailbox,
		parser:     parser,
		reconciler: reconciler,
		runs:       runs,
		settings:   settings,
		loc:        loc,
	}
}

// Run executes one sync pass and returns aggregate counts. Any message
// source or event store failure aborts the run and propagates; the
// partially-updated calendar stays individually consistent and a
// re-run resumes idempotently via fingerprints.
func (s *SyncService) Run(ctx context.Context) (*domain.RunResult, error) {
	record := &domain.RunRecord{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}

	result, err := s.run(ctx, record)

	record.FinishedAt = time.Now()
	if err != nil {
		record.Error = err.Error()
	} else {
		record.Created = result.Created
		record.Updated = result.Updated
		record.SkippedOverlap = result.SkippedOverlap
	}
	s.recordRun(ctx, record)

	return result, err
}

func (s *SyncService) run(ctx context.Context, record *domain.RunRecord) (*domain.RunResult, error) {
	logger.Section("Schedule sync")

	// 1. List recent notifications. The source returns newest-first.
	refs, err := s.mailbox.ListRecent(ctx, driven.MessageFilter{
		Sender:        s.settings.SenderFilter,
		Subject:       s.settings.SubjectFilter,
		NewerThanDays: s.settings.LookbackDays,
		MaxResults:    s.settings.MaxMessages,
	})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	record.MessagesSeen = len(refs)
	logger.Info("Found %d notification message(s)", len(refs))

	// 2. Process oldest-first so that when two notifications overlap in
	// date range, the most recent republication's values win via the
	// update path. This ordering is a correctness requirement.
	result := &domain.RunResult{}
	for i := len(refs) - 1; i >= 0; i-- {
		if err := s.processMessage(ctx, refs[i], record, result); err != nil {
			return nil, err
		}
	}

	logger.Info("Sync complete: %d created, %d updated, %d skipped",
		result.Created, result.Updated, result.SkippedOverlap)
	return result, nil
}

// processMessage fetches, parses and reconciles one notification.
func (s *SyncService) processMessage(
	ctx context.Context,
	ref driven.MessageRef,
	record *domain.RunRecord,
	result *domain.RunResult,
) error {
	body, err := s.mailbox.FetchBody(ctx, ref.ID)
	if err != nil {
		return fmt.Errorf("fetch message %s: %w", ref.ID, err)
	}

	shifts := s.parser.Parse(body, s.loc)
	record.ShiftsParsed += len(shifts)
	logger.Debug("Message %s: %d shift(s) parsed", ref.ID, len(shifts))

	for _, shift := range shifts {
		outcome, err := s.reconciler.Upsert(ctx, shift)
		if err != nil {
			return fmt.Errorf("upsert shift at %s: %w", shift.Start.Format(time.RFC3339), err)
		}
		switch outcome {
		case domain.OutcomeCreated:
			result.Created++
		case domain.OutcomeUpdated:
			result.Updated++
		case domain.OutcomeSkippedOverlap:
			result.SkippedOverlap++
		}
	}
	return nil
}

// recordRun persists the run record best-effort. The calendar is the
// source of truth; run history is observability only and must never
// fail a run.
func (s *SyncService) recordRun(ctx context.Context, record *domain.RunRecord) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Save(ctx, record); err != nil {
		logger.Warn("Failed to save run record %s: %v", record.ID, err)
	}
}
