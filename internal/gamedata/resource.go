package gamedata

// Kind selects the snapshot shape and diff algorithm of a monitored resource.
type Kind int

const (
	// KindCatalog is a structured JSON document compared key by key.
	KindCatalog Kind = iota
	// KindText is a newline-delimited text file compared by line membership.
	KindText
)

// String returns string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindCatalog:
		return "catalog"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Resource describes one monitored gamedata endpoint. Source URL and snapshot
// path are compiled-in per instance; the config file may override the snapshot
// directory they are resolved against.
type Resource struct {
	Name          string
	Title         string
	SourceURL     string
	SnapshotFile  string
	WebhookEnvVar string
	Kind          Kind
}

// Monitored resource instances. Each maps to one scheduled job.
var (
	Furnidata = Resource{
		Name:          "furnidata",
		Title:         "Furnidata",
		SourceURL:     "https://www.habbo.it/gamedata/furnidata_json/0",
		SnapshotFile:  "furnidata/furnidata.json",
		WebhookEnvVar: "DISCORD_WEBHOOK",
		Kind:          KindCatalog,
	}

	FlashTexts = Resource{
		Name:          "flashtexts",
		Title:         "External Flash Texts",
		SourceURL:     "https://www.habbo.it/gamedata/external_flash_texts/0",
		SnapshotFile:  "external_flash_texts/external_flash_texts.txt",
		WebhookEnvVar: "DISCORD_WEBHOOK_EXT_FLASH_TEXTS",
		Kind:          KindText,
	}

	Variables = Resource{
		Name:          "variables",
		Title:         "External Variables",
		SourceURL:     "https://www.habbo.it/gamedata/external_variables/0",
		SnapshotFile:  "external_variables/external_variables.txt",
		WebhookEnvVar: "DISCORD_WEBHOOK_EXT_VARIABLES",
		Kind:          KindText,
	}
)

// Resources returns all monitored resource instances.
func Resources() []Resource {
	return []Resource{Furnidata, FlashTexts, Variables}
}

// Lookup finds a resource by name. The second return value reports whether the
// name is known.
func Lookup(name string) (Resource, bool) {
	for _, res := range Resources() {
		if res.Name == name {
			return res, true
		}
	}
	return Resource{}, false
}
