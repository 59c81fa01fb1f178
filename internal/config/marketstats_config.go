package config

// Furnilines excluded from market stats collection: event, builders club and
// test furni never trade on the marketplace.
var defaultExcludedFurniLines = []string{
	"room_noob",
	"buildersclub",
	"buildersclub_alpha1",
	"testing",
	"sanrio",
	"room_xbar",
	"room_pcnc15",
	"room_hall15",
	"room_info15",
	"room_thr15",
	"room_cof15",
	"habbo15",
	"room_welcomelounge",
	"spaces",
	"newbie",
	"room_gh15",
	"room_hcl15",
	"room_wl15",
	"room_picnic",
	"room_theatredome",
	"room_lido",
}

// MarketStatsConfig defines settings for the marketplace stats collector
type MarketStatsConfig struct {
	HistoryFile          string   `json:"history_file,omitempty" yaml:"history_file,omitempty"`
	HistoryLimitDays     int      `json:"history_limit_days,omitempty" yaml:"history_limit_days,omitempty" validate:"omitempty,min=1"`
	RoomStatsURLTemplate string   `json:"room_stats_url_template,omitempty" yaml:"room_stats_url_template,omitempty"`
	WallStatsURLTemplate string   `json:"wall_stats_url_template,omitempty" yaml:"wall_stats_url_template,omitempty"`
	ExcludedFurniLines   []string `json:"excluded_furni_lines,omitempty" yaml:"excluded_furni_lines,omitempty"`
}

// NewDefaultMarketStatsConfig creates default market stats configuration
func NewDefaultMarketStatsConfig() MarketStatsConfig {
	return MarketStatsConfig{
		HistoryFile:          "marketstats/historical_stats.parquet",
		HistoryLimitDays:     30,
		RoomStatsURLTemplate: "https://www.habbo.it/api/public/marketplace/stats/roomItem/%s",
		WallStatsURLTemplate: "https://www.habbo.it/api/public/marketplace/stats/wallitem/%s",
		ExcludedFurniLines:   defaultExcludedFurniLines,
	}
}
