package settings

import (
	"encoding/json"
	"fmt"
)

// Option is one selectable entry of a filter facet. Label is either a
// literal caption or a locale dictionary key resolved by the UI.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count,omitempty"`
}

// Setup carries application identity and the resolved language/market pair.
type Setup struct {
	AppName      string `json:"appName"`
	Language     string `json:"language"`
	Market       string `json:"market"`
	SupportEmail string `json:"supportEmail"`
	BaseURL      string `json:"baseUrl"`
}

// UI holds presentation preferences.
type UI struct {
	Theme          string `json:"theme"`
	CompactMode    bool   `json:"compactMode"`
	CardsPerPage   int    `json:"cardsPerPage"`
	ShowCardCounts bool   `json:"showCardCounts"`
	AccentColor    string `json:"accentColor"`
}

// Search holds search behavior tuning.
type Search struct {
	DebounceMs       int  `json:"debounceMs"`
	MinQueryLength   int  `json:"minQueryLength"`
	MaxResults       int  `json:"maxResults"`
	FullTextEnabled  bool `json:"fullTextEnabled"`
	HighlightMatches bool `json:"highlightMatches"`
}

// Editor holds card editor behavior.
type Editor struct {
	AutosaveSeconds      int  `json:"autosaveSeconds"`
	MarkdownPreview      bool `json:"markdownPreview"`
	AllowAnonymousDrafts bool `json:"allowAnonymousDrafts"`
	MaxAttachmentMB      int  `json:"maxAttachmentMb"`
}

// Homepage configures the landing page.
type Homepage struct {
	RecentCardCount    int      `json:"recentCardCount"`
	ShowOnboarding     bool     `json:"showOnboarding"`
	FeaturedCategories []string `json:"featuredCategories"`
}

// Filters holds the facet option lists shown in the card browser.
type Filters struct {
	Categories   []Option `json:"categories"`
	Difficulties []Option `json:"difficulties"`
	Tags         []Option `json:"tags"`
}

// Settings is the fully resolved, validated configuration consumed by the
// application. Every field holds a usable value after resolution; consumers
// never need to re-check for gaps.
type Settings struct {
	Setup    Setup    `json:"setup"`
	UI       UI       `json:"ui"`
	Search   Search   `json:"search"`
	Editor   Editor   `json:"editor"`
	Homepage Homepage `json:"homepage"`
	Filters  Filters  `json:"filters"`
}

// Decode converts a validated settings map into the typed Settings view.
// The map should come from Validate; unrecognized keys are ignored.
func Decode(raw map[string]any) (Settings, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: encode: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(buf, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: decode: %w", err)
	}

	return s, nil
}
