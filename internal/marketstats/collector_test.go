package marketstats

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/gamewatch/internal/config"
	"github.com/aleister1102/gamewatch/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `{
	"roomitemtypes": {"furnitype": [
		{"id": 1, "classname": "chair", "furniline": "classics"},
		{"id": 2, "classname": "nft_token", "furniline": "classics"},
		{"id": 3, "classname": "bc_sofa", "furniline": "classics"},
		{"id": 4, "classname": "noob_bed", "furniline": "room_noob"}
	]},
	"wallitemtypes": {"furnitype": [
		{"id": 5, "classname": "poster", "furniline": "classics"}
	]}
}`

type collectorFixture struct {
	collector *Collector
	store     *HistoryStore
	statsHits map[string]int
}

// newCollectorFixture serves a fixed catalog plus per-classname stats bodies
// keyed "room/chair", "wall/poster".
func newCollectorFixture(t *testing.T, statsBodies map[string]string, now time.Time) *collectorFixture {
	t.Helper()

	hits := make(map[string]int)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/furnidata":
			fmt.Fprint(w, testCatalogJSON)
		case strings.HasPrefix(r.URL.Path, "/stats/"):
			key := strings.TrimPrefix(r.URL.Path, "/stats/")
			hits[key]++
			body, ok := statsBodies[key]
			if !ok {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, body)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	clientCfg := httpclient.DefaultHTTPClientConfig()
	clientCfg.EnableHTTP2 = false
	client, err := httpclient.NewHTTPClient(clientCfg, zerolog.Nop())
	require.NoError(t, err)

	cfg := config.NewDefaultMarketStatsConfig()
	cfg.RoomStatsURLTemplate = server.URL + "/stats/room/%s"
	cfg.WallStatsURLTemplate = server.URL + "/stats/wall/%s"

	store := NewHistoryStore(filepath.Join(t.TempDir(), "stats.parquet"), zerolog.Nop())
	collector := NewCollector(zerolog.Nop(), cfg, client, store)
	collector.catalogURL = server.URL + "/furnidata"
	collector.now = func() time.Time { return now }

	return &collectorFixture{collector: collector, store: store, statsHits: hits}
}

func TestCollector_FiltersUntradableItems(t *testing.T) {
	fx := newCollectorFixture(t, map[string]string{
		"room/chair":  `{"history": [{"dayOffset": "-1", "averagePrice": 5, "totalOpenOffers": 2, "totalSoldItems": 1}]}`,
		"wall/poster": `{"history": [{"dayOffset": "-1", "averagePrice": 3, "totalOpenOffers": 1, "totalSoldItems": 0}]}`,
	}, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))

	result, err := fx.collector.Run(context.Background())
	require.NoError(t, err)

	// nft_, bc_ and room_noob entries are never queried
	assert.Equal(t, 2, result.ItemsProcessed)
	assert.Zero(t, fx.statsHits["room/nft_token"])
	assert.Zero(t, fx.statsHits["room/bc_sofa"])
	assert.Zero(t, fx.statsHits["room/noob_bed"])
	assert.Equal(t, 1, fx.statsHits["room/chair"])
	assert.Equal(t, 1, fx.statsHits["wall/poster"])
}

func TestCollector_SeedsFullHistoryOnFirstRun(t *testing.T) {
	fx := newCollectorFixture(t, map[string]string{
		"room/chair": `{"statsDate": "2026-08-24", "history": [
			{"dayOffset": "-2", "averagePrice": 4, "totalOpenOffers": 6, "totalSoldItems": 1},
			{"dayOffset": "-1", "averagePrice": 5, "totalOpenOffers": 2, "totalSoldItems": 1}
		]}`,
		"wall/poster": `{"history": []}`,
	}, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))

	result, err := fx.collector.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordsAppended)

	records, err := fx.store.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "chair", records[0].Classname)
	assert.Equal(t, "room", records[0].ItemType)
	assert.Equal(t, 5.0, records[1].AveragePrice)
}

func TestCollector_NoDuplicateRecordSameDay(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	bodies := map[string]string{
		"room/chair":  `{"history": [{"dayOffset": "-1", "averagePrice": 5, "totalOpenOffers": 2, "totalSoldItems": 1}]}`,
		"wall/poster": `{"history": [{"dayOffset": "-1", "averagePrice": 3, "totalOpenOffers": 1, "totalSoldItems": 0}]}`,
	}
	fx := newCollectorFixture(t, bodies, now)

	_, err := fx.collector.Run(context.Background())
	require.NoError(t, err)

	result, err := fx.collector.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.RecordsAppended)

	records, err := fx.store.Load()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCollector_AppendsNewDay(t *testing.T) {
	bodies := map[string]string{
		"room/chair":  `{"history": [{"dayOffset": "-1", "averagePrice": 5, "totalOpenOffers": 2, "totalSoldItems": 1}]}`,
		"wall/poster": `{"history": []}`,
	}
	fx := newCollectorFixture(t, bodies, time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC))

	_, err := fx.collector.Run(context.Background())
	require.NoError(t, err)

	fx.collector.now = func() time.Time { return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) }
	result, err := fx.collector.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordsAppended)

	records, err := fx.store.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-08-23", records[0].StatsDate)
	assert.Equal(t, int32(-1), records[0].DayOffset)
	assert.Equal(t, "2026-08-24", records[1].StatsDate)
	assert.Equal(t, int32(0), records[1].DayOffset)
}

func TestCollector_ItemFetchFailureIsNonFatal(t *testing.T) {
	fx := newCollectorFixture(t, map[string]string{
		// room/chair missing: its stats endpoint returns 404
		"wall/poster": `{"history": [{"dayOffset": "-1", "averagePrice": 3, "totalOpenOffers": 1, "totalSoldItems": 0}]}`,
	}, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))

	result, err := fx.collector.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.FetchFailures)
	assert.Equal(t, 1, result.RecordsAppended)

	records, err := fx.store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "poster", records[0].Classname)
}

func TestCollector_DayOffsetClampedAtLimit(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	fx := newCollectorFixture(t, map[string]string{
		"room/chair":  `{"history": [{"dayOffset": "-1", "averagePrice": 5, "totalOpenOffers": 2, "totalSoldItems": 1}]}`,
		"wall/poster": `{"history": []}`,
	}, now)

	// Pre-seed an ancient record well past the limit
	require.NoError(t, fx.store.Save([]StatsRecord{
		{Classname: "chair", ItemType: "room", StatsDate: "2026-01-01", AveragePrice: 1},
	}))

	_, err := fx.collector.Run(context.Background())
	require.NoError(t, err)

	records, err := fx.store.Load()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, int32(-30), records[0].DayOffset)
}
