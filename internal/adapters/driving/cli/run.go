package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shiftsync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/shiftsync/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/shiftsync/internal/connectors/google"
	calconn "github.com/custodia-labs/shiftsync/internal/connectors/google/calendar"
	gmailconn "github.com/custodia-labs/shiftsync/internal/connectors/google/gmail"
	"github.com/custodia-labs/shiftsync/internal/core/domain"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
	"github.com/custodia-labs/shiftsync/internal/core/services"
	"github.com/custodia-labs/shiftsync/internal/logger"
	"github.com/custodia-labs/shiftsync/internal/parsers/shifttable"
)

// runPayload is the structured result printed on success. Skipped
// overlaps are visible via `shiftsync history`, not here.
type runPayload struct {
	OK      bool `json:"ok"`
	Created int  `json:"created"`
	Updated int  `json:"updated"`
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one schedule sync pass",
	Long: `Fetches recent schedule notification emails, parses the embedded
shift table and reconciles each shift into the configured calendar.
Prints a JSON result with created and updated counts.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Configuration errors are fatal before any network work.
	settingsStore, err := file.NewSettingsStore(flagConfig)
	if err != nil {
		return fmt.Errorf("locate settings: %w", err)
	}
	settings, err := settingsStore.Load()
	if err != nil {
		return err
	}
	loc, err := settings.Location()
	if err != nil {
		return err
	}

	syncer, cleanup, err := buildSyncer(ctx, settings, loc)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := syncer.Run(ctx)
	if err != nil {
		return describeSyncError(err, settings.CalendarID)
	}

	out, err := json.Marshal(runPayload{
		OK:      true,
		Created: result.Created,
		Updated: result.Updated,
	})
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}

// describeSyncError maps the common Google API failures to actionable
// messages. Anything unrecognised propagates with a generic prefix.
func describeSyncError(err error, calendarID string) error {
	switch {
	case google.IsUnauthorized(err):
		return fmt.Errorf("sync failed: credentials rejected, re-issue the refresh token: %w", err)
	case google.IsNotFound(err):
		return fmt.Errorf("sync failed: calendar %q not found: %w", calendarID, err)
	case google.IsRateLimited(err):
		return fmt.Errorf("sync failed: rate limited by the API, retry later: %w", err)
	}
	return fmt.Errorf("sync failed: %w", err)
}

// buildSyncer wires the adapters to the core services for one run.
// The returned cleanup closes the local run store.
func buildSyncer(
	ctx context.Context,
	settings *domain.Settings,
	loc *time.Location,
) (*services.SyncService, func(), error) {
	ts := google.NewTokenSource(ctx, settings)

	gmailSvc, err := google.NewGmailService(ctx, ts)
	if err != nil {
		return nil, nil, fmt.Errorf("create gmail service: %w", err)
	}
	calSvc, err := google.NewCalendarService(ctx, ts)
	if err != nil {
		return nil, nil, fmt.Errorf("create calendar service: %w", err)
	}

	// Run history is optional observability; a broken local store must
	// not block a sync.
	var runs driven.RunStore
	cleanup := func() {}
	store, err := sqlite.NewStore(flagDataDir)
	if err != nil {
		logger.Warn("Run history unavailable: %v", err)
	} else {
		runs = store.RunStore()
		cleanup = func() { _ = store.Close() }
	}

	parser := shifttable.New(shifttable.NewExtractor(), settings.EventTitle)
	reconciler := services.NewReconciler(
		calconn.NewStore(calSvc),
		settings.CalendarID,
		settings.EventTitle,
		settings.EventColorID,
	)

	syncer := services.NewSyncService(
		gmailconn.NewSource(gmailSvc),
		parser,
		reconciler,
		runs,
		settings,
		loc,
	)
	return syncer, cleanup, nil
}
