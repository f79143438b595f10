package dashboard

import (
	"golang.org/x/text/message"

	"github.com/sympohub/dashboard/internal/i18n"
)

// Tile keys.
const (
	TileEvents       = "events"
	TileParticipants = "participants"
	TileLodging      = "lodging"
)

// Trend is a directional change shown under a tile value.
type Trend struct {
	Value    string `json:"value"`
	Positive bool   `json:"positive"`
}

// Tile is one statistic card on the dashboard.
type Tile struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Trend       Trend  `json:"trend"`
}

// TileOverride replaces the display value and trend of a tile.
type TileOverride struct {
	Key      string `mapstructure:"key" validate:"required,oneof=events participants lodging"`
	Value    string `mapstructure:"value"`
	Trend    string `mapstructure:"trend"`
	Positive bool   `mapstructure:"positive"`
}

type tileSpec struct {
	key            string
	titleKey       string
	descriptionKey string
	icon           string
	value          string
	trend          Trend
}

var defaultTiles = []tileSpec{
	{
		key:            TileEvents,
		titleKey:       i18n.KeyTileEventsTitle,
		descriptionKey: i18n.KeyTileEventsDescription,
		icon:           "calendar",
		value:          "24",
		trend:          Trend{Value: "12%", Positive: true},
	},
	{
		key:            TileParticipants,
		titleKey:       i18n.KeyTileParticipantsTitle,
		descriptionKey: i18n.KeyTileParticipantsDescription,
		icon:           "users",
		value:          "3,847",
		trend:          Trend{Value: "8.2%", Positive: true},
	},
	{
		key:            TileLodging,
		titleKey:       i18n.KeyTileLodgingTitle,
		descriptionKey: i18n.KeyTileLodgingDescription,
		icon:           "hotel",
		value:          "87%",
		trend:          Trend{Value: "5.1%", Positive: true},
	},
}

// StaticTiles returns the three display tiles. Values are fixed display
// fields, not aggregates of the loaded events; overrides replace them by key.
func StaticTiles(p *message.Printer, overrides ...TileOverride) []Tile {
	byKey := make(map[string]TileOverride, len(overrides))
	for _, o := range overrides {
		byKey[o.Key] = o
	}

	tiles := make([]Tile, 0, len(defaultTiles))
	for _, def := range defaultTiles {
		tile := Tile{
			Key:         def.key,
			Title:       p.Sprintf(def.titleKey),
			Value:       def.value,
			Description: p.Sprintf(def.descriptionKey),
			Icon:        def.icon,
			Trend:       def.trend,
		}
		if o, ok := byKey[def.key]; ok {
			if o.Value != "" {
				tile.Value = o.Value
			}
			if o.Trend != "" {
				tile.Trend = Trend{Value: o.Trend, Positive: o.Positive}
			}
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

// QuickAction is a shortcut button on the dashboard.
type QuickAction struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Href  string `json:"href"`
}

// QuickActions returns the dashboard shortcut buttons.
func QuickActions(p *message.Printer) []QuickAction {
	return []QuickAction{
		{Key: "new_event", Label: p.Sprintf(i18n.KeyActionNewEvent), Icon: "calendar", Href: "/admin/events/new"},
		{Key: "add_participant", Label: p.Sprintf(i18n.KeyActionAddParticipant), Icon: "users", Href: "/admin/participants/new"},
		{Key: "assign_rooms", Label: p.Sprintf(i18n.KeyActionAssignRooms), Icon: "hotel", Href: "/admin/rooms/assign"},
	}
}
