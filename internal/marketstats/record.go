package marketstats

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/aleister1102/gamewatch/internal/errorwrapper"
)

// StatsRecord is one day of marketplace statistics for a single furni item,
// as stored in the Parquet history file.
type StatsRecord struct {
	Classname    string  `parquet:"classname"`
	ItemType     string  `parquet:"item_type"` // "room" or "wall"
	StatsDate    string  `parquet:"stats_date"` // YYYY-MM-DD
	DayOffset    int32   `parquet:"day_offset"` // 0 or negative, relative to collection date
	AveragePrice float64 `parquet:"average_price"`
	OpenOffers   int32   `parquet:"open_offers"`
	SoldItems    int32   `parquet:"sold_items"`
}

// flexInt tolerates the marketplace API emitting day offsets as either a JSON
// number or a quoted string ("-1").
type flexInt int32

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

// apiHistoryEntry mirrors one element of the stats endpoint's history array.
type apiHistoryEntry struct {
	DayOffset    flexInt `json:"dayOffset"`
	AveragePrice float64 `json:"averagePrice"`
	OpenOffers   int32   `json:"totalOpenOffers"`
	SoldItems    int32   `json:"totalSoldItems"`
}

// apiStatsResponse mirrors the marketplace stats endpoint payload.
type apiStatsResponse struct {
	StatsDate string            `json:"statsDate"`
	History   []apiHistoryEntry `json:"history"`
}

// parseStatsResponse decodes a marketplace stats payload. An empty history is
// valid: items that never traded return no rows.
func parseStatsResponse(raw []byte) (*apiStatsResponse, error) {
	var resp apiStatsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errorwrapper.WrapError(err, "marketplace stats payload is not valid JSON")
	}
	return &resp, nil
}
