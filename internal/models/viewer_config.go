package models

import "github.com/transsib/navigator/internal/railway"

type Palette struct {
	Idle       string `json:"idle"`
	Active     string `json:"active"`
	Muted      string `json:"muted"`
	Background string `json:"background"`
}

// ViewerConfig is what a map client needs before the first selection.
type ViewerConfig struct {
	Title           string   `json:"title"`
	MapStyle        string   `json:"mapStyle"`
	AccessToken     string   `json:"accessToken"`
	DefaultViewport Viewport `json:"defaultViewport"`
	FromPlaceholder string   `json:"fromPlaceholder"`
	ToPlaceholder   string   `json:"toPlaceholder"`
	Palette         Palette  `json:"palette"`
	StationCount    int      `json:"stationCount"`
}

func NewViewerConfig(title, mapStyle, accessToken string, cfg railway.Config, stationCount int) ViewerConfig {
	return ViewerConfig{
		Title:           title,
		MapStyle:        mapStyle,
		AccessToken:     accessToken,
		DefaultViewport: NewViewport(cfg.DefaultViewport),
		FromPlaceholder: cfg.FromPlaceholder,
		ToPlaceholder:   cfg.ToPlaceholder,
		Palette: Palette{
			Idle:       cfg.Palette.Idle,
			Active:     cfg.Palette.Active,
			Muted:      cfg.Palette.Muted,
			Background: cfg.Palette.Background,
		},
		StationCount: stationCount,
	}
}
