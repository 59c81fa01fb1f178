package monitor

import (
	"context"
	"path/filepath"
	"time"

	"github.com/aleister1102/gamewatch/internal/config"
	"github.com/aleister1102/gamewatch/internal/datastore"
	"github.com/aleister1102/gamewatch/internal/differ"
	"github.com/aleister1102/gamewatch/internal/gamedata"
	"github.com/aleister1102/gamewatch/internal/httpclient"
	"github.com/aleister1102/gamewatch/internal/notifier"
	"github.com/aleister1102/gamewatch/internal/notifier/discord"
	"github.com/aleister1102/gamewatch/internal/snapshot"
	"github.com/rs/zerolog"
)

// CheckResult summarizes one completed monitor run.
type CheckResult struct {
	Monitor     string
	Changed     bool
	Added       int
	Removed     int
	Modified    int
	Notified    bool
	NotifyError error
	Duration    time.Duration
}

// Runner executes the fetch, diff, notify, persist sequence for a monitored
// resource. Each Run is a single synchronous pass with no retained state
// beyond the snapshot file; re-running against unchanged upstream data yields
// an empty diff and no notification.
type Runner struct {
	logger         zerolog.Logger
	httpClient     *httpclient.HTTPClient
	store          *snapshot.Store
	notifyHelper   *notifier.NotificationHelper
	history        *datastore.HistoryDB // nil when run history is disabled
	documentDiffer *differ.DocumentDiffer
	lineDiffer     *differ.LineDiffer
	cfg            *config.GlobalConfig
}

// NewRunner creates a new monitor Runner.
func NewRunner(
	logger zerolog.Logger,
	cfg *config.GlobalConfig,
	httpClient *httpclient.HTTPClient,
	notifyHelper *notifier.NotificationHelper,
	history *datastore.HistoryDB,
) *Runner {
	return &Runner{
		logger:         logger.With().Str("component", "MonitorRunner").Logger(),
		httpClient:     httpClient,
		store:          snapshot.NewStore(logger),
		notifyHelper:   notifyHelper,
		history:        history,
		documentDiffer: differ.NewDocumentDiffer(logger),
		lineDiffer:     differ.NewLineDiffer(logger),
		cfg:            cfg,
	}
}

// comparison is the kind-specific part of a run: diff counts, notification
// payloads, and the bytes to persist.
type comparison struct {
	added    int
	removed  int
	modified int
	payloads []discord.DiscordMessagePayload
	persist  []byte
}

func (c *comparison) changed() bool {
	return c.added > 0 || c.removed > 0 || c.modified > 0
}

// Run executes one monitoring pass for the given resource. Fetch and parse
// failures are fatal and leave the snapshot file untouched; notification
// failures are recorded in the result but do not fail the run.
func (r *Runner) Run(ctx context.Context, res gamedata.Resource) (*CheckResult, error) {
	startTime := time.Now()
	logger := r.logger.With().Str("monitor", res.Name).Logger()
	logger.Info().Str("url", res.SourceURL).Str("kind", res.Kind.String()).Msg("Starting monitor run")

	historyID := r.recordStart(res.Name, startTime)

	result, err := r.runPipeline(ctx, logger, res)
	if err != nil {
		r.recordCompletion(historyID, datastore.StatusFailed, &CheckResult{Monitor: res.Name}, err)
		return nil, err
	}

	result.Duration = time.Since(startTime)

	status := datastore.StatusNoChanges
	if result.Changed {
		status = datastore.StatusCompleted
	}
	r.recordCompletion(historyID, status, result, nil)

	logger.Info().
		Bool("changed", result.Changed).
		Int("added", result.Added).
		Int("removed", result.Removed).
		Int("modified", result.Modified).
		Bool("notified", result.Notified).
		Msg("Monitor run completed")
	logResourceUsage(logger, result.Duration)

	return result, nil
}

// runPipeline performs the fetch, load-previous, diff, notify, persist steps.
func (r *Runner) runPipeline(ctx context.Context, logger zerolog.Logger, res gamedata.Resource) (*CheckResult, error) {
	raw, err := r.httpClient.FetchContent(ctx, res.SourceURL)
	if err != nil {
		return nil, &FetchError{Monitor: res.Name, URL: res.SourceURL, Err: err}
	}

	snapshotPath := filepath.Join(r.cfg.MonitorConfig.SnapshotDir, res.SnapshotFile)
	prevRaw, found, err := r.store.Load(snapshotPath)
	if err != nil {
		return nil, err
	}

	var cmp *comparison
	switch res.Kind {
	case gamedata.KindCatalog:
		cmp, err = r.compareCatalog(res, raw, prevRaw, found)
	default:
		cmp, err = r.compareText(res, raw, prevRaw, found)
	}
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		Monitor:  res.Name,
		Changed:  cmp.changed(),
		Added:    cmp.added,
		Removed:  cmp.removed,
		Modified: cmp.modified,
	}

	if result.Changed {
		webhookURL := notifier.ResolveWebhookURL(r.cfg.NotificationConfig.WebhookURLFor(res.Name), res.WebhookEnvVar)
		if err := r.notifyHelper.SendDiffNotification(ctx, webhookURL, cmp.payloads); err != nil {
			// Best effort only: data durability outranks notification delivery
			notifyErr := &NotifyError{Monitor: res.Name, Err: err}
			logger.Error().Err(notifyErr).Msg("Notification failed, persisting snapshot anyway")
			result.NotifyError = notifyErr
		} else if webhookURL != "" {
			result.Notified = true
		}
	}

	// Persist unconditionally so the snapshot always reflects the latest
	// successfully parsed upstream state.
	if err := r.store.Persist(snapshotPath, cmp.persist); err != nil {
		return nil, err
	}

	return result, nil
}

// compareCatalog diffs structured catalog snapshots key by key.
func (r *Runner) compareCatalog(res gamedata.Resource, raw, prevRaw []byte, found bool) (*comparison, error) {
	current, err := gamedata.ParseFurniCatalog(raw)
	if err != nil {
		return nil, &ParseError{Monitor: res.Name, Err: err}
	}

	previous := snapshot.Document{}
	if found {
		previous, err = gamedata.ParseFurniCatalog(prevRaw)
		if err != nil {
			return nil, &ParseError{Monitor: res.Name, Err: err}
		}
	}

	persist, err := gamedata.EncodeCatalogSnapshot(raw)
	if err != nil {
		return nil, &ParseError{Monitor: res.Name, Err: err}
	}

	diffResult := r.documentDiffer.Diff(previous, current)
	added, removed, modified := diffResult.Counts()

	return &comparison{
		added:    added,
		removed:  removed,
		modified: modified,
		payloads: notifier.FormatCatalogDiffMessages(res.Title, diffResult),
		persist:  persist,
	}, nil
}

// compareText diffs line-based snapshots by membership. The raw payload is
// persisted verbatim so the committed file mirrors upstream byte for byte.
func (r *Runner) compareText(res gamedata.Resource, raw, prevRaw []byte, found bool) (*comparison, error) {
	current, err := gamedata.ParseTextLines(raw)
	if err != nil {
		return nil, &ParseError{Monitor: res.Name, Err: err}
	}

	previous := snapshot.LineSet{}
	if found {
		previous, err = gamedata.ParseTextLines(prevRaw)
		if err != nil {
			return nil, &ParseError{Monitor: res.Name, Err: err}
		}
	}

	diffResult := r.lineDiffer.Diff(previous, current)
	added, removed := diffResult.Counts()

	return &comparison{
		added:    added,
		removed:  removed,
		payloads: notifier.FormatTextDiffMessages(res.Title, diffResult),
		persist:  raw,
	}, nil
}

func (r *Runner) recordStart(monitor string, startTime time.Time) int64 {
	if r.history == nil {
		return 0
	}
	id, err := r.history.RecordCheckStart(monitor, startTime)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Failed to record check start in history db")
		return 0
	}
	return id
}

func (r *Runner) recordCompletion(historyID int64, status string, result *CheckResult, runErr error) {
	if r.history == nil || historyID == 0 {
		return
	}
	errorSummary := ""
	if runErr != nil {
		errorSummary = runErr.Error()
	}
	err := r.history.UpdateCheckCompletion(historyID, time.Now(), status, result.Added, result.Removed, result.Modified, result.Notified, errorSummary)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Failed to record check completion in history db")
	}
}
