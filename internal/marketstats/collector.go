package marketstats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aleister1102/gamewatch/internal/config"
	"github.com/aleister1102/gamewatch/internal/errorwrapper"
	"github.com/aleister1102/gamewatch/internal/gamedata"
	"github.com/aleister1102/gamewatch/internal/httpclient"
	"github.com/rs/zerolog"
)

const statsDateLayout = "2006-01-02"

// tradableItem is a furni item eligible for marketplace stats collection.
type tradableItem struct {
	Classname string
	ItemType  string // "room" or "wall"
}

// CollectResult summarizes one stats collection run.
type CollectResult struct {
	ItemsProcessed  int
	FetchFailures   int
	RecordsAppended int
	TotalRecords    int
	Duration        time.Duration
}

// Collector gathers daily marketplace statistics for every tradable furni
// item and appends them to the Parquet history. One record per item per day;
// re-running on the same day is a no-op for items already recorded.
type Collector struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
	store      *HistoryStore
	cfg        config.MarketStatsConfig
	catalogURL string
	now        func() time.Time
}

// NewCollector creates a marketplace stats Collector.
func NewCollector(logger zerolog.Logger, cfg config.MarketStatsConfig, httpClient *httpclient.HTTPClient, store *HistoryStore) *Collector {
	return &Collector{
		logger:     logger.With().Str("component", "MarketStatsCollector").Logger(),
		httpClient: httpClient,
		store:      store,
		cfg:        cfg,
		catalogURL: gamedata.Furnidata.SourceURL,
		now:        time.Now,
	}
}

// Run executes one collection pass: load the tradable item list from the
// furnidata catalog, fetch today's stats for each item, merge into the stored
// history and rewrite the history file. Per-item fetch failures are logged
// and skipped so one flaky endpoint cannot abort the whole run.
func (c *Collector) Run(ctx context.Context) (*CollectResult, error) {
	startTime := c.now()
	currentDate := startTime.UTC().Truncate(24 * time.Hour)
	today := currentDate.Format(statsDateLayout)

	items, err := c.loadTradableItems(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.Info().Int("items", len(items)).Msg("Loaded tradable item list")

	existing, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	history := groupByClassname(existing)

	result := &CollectResult{ItemsProcessed: len(items)}
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		appended, err := c.collectItem(ctx, item, history, today)
		if err != nil {
			result.FetchFailures++
			c.logger.Warn().Err(err).Str("classname", item.Classname).Msg("Skipping item after stats fetch failure")
			continue
		}
		if appended {
			result.RecordsAppended++
		}
	}

	all := flattenHistory(history)
	recomputeDayOffsets(all, currentDate, c.cfg.HistoryLimitDays)
	if err := c.store.Save(all); err != nil {
		return nil, err
	}

	result.TotalRecords = len(all)
	result.Duration = time.Since(startTime)
	c.logger.Info().
		Int("items", result.ItemsProcessed).
		Int("fetch_failures", result.FetchFailures).
		Int("appended", result.RecordsAppended).
		Int("total_records", result.TotalRecords).
		Dur("duration", result.Duration).
		Msg("Stats collection completed")
	return result, nil
}

// loadTradableItems fetches the furnidata catalog and filters it down to
// items that can appear on the marketplace. NFT and builders club items never
// trade, as do the excluded furnilines.
func (c *Collector) loadTradableItems(ctx context.Context) ([]tradableItem, error) {
	raw, err := c.httpClient.FetchContent(ctx, c.catalogURL)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to fetch furnidata catalog")
	}

	doc, err := gamedata.ParseFurniCatalog(raw)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(c.cfg.ExcludedFurniLines))
	for _, line := range c.cfg.ExcludedFurniLines {
		excluded[strings.ToLower(line)] = struct{}{}
	}

	var items []tradableItem
	for _, key := range doc.Keys() {
		itemType, _, ok := strings.Cut(key, "/")
		if !ok {
			continue
		}
		entry := doc[key]
		classname, _ := entry["classname"].(string)
		if classname == "" {
			continue
		}
		if strings.HasPrefix(classname, "nft_") || strings.HasPrefix(classname, "bc_") {
			continue
		}
		if furniline, _ := entry["furniline"].(string); furniline != "" {
			if _, skip := excluded[strings.ToLower(furniline)]; skip {
				continue
			}
		}
		items = append(items, tradableItem{Classname: classname, ItemType: itemType})
	}
	return items, nil
}

// collectItem fetches stats for one item and merges them into the history
// map. Returns whether a new record was appended.
func (c *Collector) collectItem(ctx context.Context, item tradableItem, history map[string][]StatsRecord, today string) (bool, error) {
	url := c.statsURL(item)
	raw, err := c.httpClient.FetchContent(ctx, url)
	if err != nil {
		return false, err
	}
	resp, err := parseStatsResponse(raw)
	if err != nil {
		return false, err
	}

	records, seen := history[item.Classname]
	if !seen {
		// First encounter: seed the full history the endpoint exposes.
		seeded := seedHistory(item, resp, today)
		if len(seeded) == 0 {
			return false, nil
		}
		history[item.Classname] = seeded
		return true, nil
	}

	latest := latestEntry(resp)
	if latest == nil {
		return false, nil
	}
	if len(records) > 0 && records[len(records)-1].StatsDate >= today {
		// Already recorded today.
		return false, nil
	}
	history[item.Classname] = append(records, StatsRecord{
		Classname:    item.Classname,
		ItemType:     item.ItemType,
		StatsDate:    today,
		AveragePrice: latest.AveragePrice,
		OpenOffers:   latest.OpenOffers,
		SoldItems:    latest.SoldItems,
	})
	return true, nil
}

func (c *Collector) statsURL(item tradableItem) string {
	if item.ItemType == "wall" {
		return fmt.Sprintf(c.cfg.WallStatsURLTemplate, item.Classname)
	}
	return fmt.Sprintf(c.cfg.RoomStatsURLTemplate, item.Classname)
}

// seedHistory converts a full API history into stored records, dating entries
// from the endpoint's statsDate when present.
func seedHistory(item tradableItem, resp *apiStatsResponse, today string) []StatsRecord {
	statsDate := resp.StatsDate
	if statsDate == "" {
		statsDate = today
	}
	records := make([]StatsRecord, 0, len(resp.History))
	for _, entry := range resp.History {
		records = append(records, StatsRecord{
			Classname:    item.Classname,
			ItemType:     item.ItemType,
			StatsDate:    statsDate,
			DayOffset:    int32(entry.DayOffset),
			AveragePrice: entry.AveragePrice,
			OpenOffers:   entry.OpenOffers,
			SoldItems:    entry.SoldItems,
		})
	}
	return records
}

// latestEntry picks the freshest record from an API response: the dayOffset
// -1 entry when present, otherwise the final history element.
func latestEntry(resp *apiStatsResponse) *apiHistoryEntry {
	for i := range resp.History {
		if resp.History[i].DayOffset == -1 {
			return &resp.History[i]
		}
	}
	if len(resp.History) == 0 {
		return nil
	}
	return &resp.History[len(resp.History)-1]
}

func groupByClassname(records []StatsRecord) map[string][]StatsRecord {
	grouped := make(map[string][]StatsRecord)
	for _, rec := range records {
		grouped[rec.Classname] = append(grouped[rec.Classname], rec)
	}
	return grouped
}

// flattenHistory rebuilds a deterministic record slice, sorted by classname
// then date, so repeated runs produce stable files.
func flattenHistory(history map[string][]StatsRecord) []StatsRecord {
	classnames := make([]string, 0, len(history))
	for classname := range history {
		classnames = append(classnames, classname)
	}
	sort.Strings(classnames)

	var all []StatsRecord
	for _, classname := range classnames {
		records := history[classname]
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].StatsDate < records[j].StatsDate
		})
		all = append(all, records...)
	}
	return all
}

// recomputeDayOffsets resets every record's offset relative to the current
// date, clamped at the history limit so ancient rows never drift past it.
func recomputeDayOffsets(records []StatsRecord, currentDate time.Time, limitDays int) {
	for i := range records {
		recordDate, err := time.Parse(statsDateLayout, records[i].StatsDate)
		if err != nil {
			continue
		}
		delta := int(currentDate.Sub(recordDate).Hours() / 24)
		if delta > limitDays {
			delta = limitDays
		}
		records[i].DayOffset = int32(-delta)
	}
}
