package railway

// ZoomScale maps the angular extent of a selection onto a map zoom level.
// Span values outside [MinSpan, MaxSpan] are clamped.
type ZoomScale struct {
	MinSpan float64
	MaxSpan float64
	// MaxZoom is the zoom used at MinSpan, MinZoom the zoom used at MaxSpan.
	MaxZoom float64
	MinZoom float64
}

// PluralForms holds the three Russian agreement forms of a counted noun.
type PluralForms struct {
	One  string
	Few  string
	Many string
}

// Labels are the fixed prefixes of the trip summary display strings.
type Labels struct {
	Distance     string
	DistanceUnit string
	Duration     string
	Stops        string
	// EndpointPadding is prepended to the echoed endpoint names.
	EndpointPadding string
}

// Palette names the colours used by the presentation layer.
type Palette struct {
	Idle       string
	Active     string
	Muted      string
	Background string
}

// Config is everything the engine needs besides the line itself.
type Config struct {
	FromPlaceholder string
	ToPlaceholder   string

	DefaultViewport Viewport
	Zoom            ZoomScale

	// AverageSpeedKmh converts distance into travel time.
	AverageSpeedKmh float64

	Labels Labels
	Hours  PluralForms
	Days   PluralForms

	Palette Palette
}

// DefaultConfig returns the reference configuration for the Trans-Siberian line.
func DefaultConfig() Config {
	return Config{
		FromPlaceholder: "Откуда",
		ToPlaceholder:   "Куда",
		DefaultViewport: Viewport{
			Zoom:      2.3,
			CenterLat: 50,
			CenterLon: 88,
		},
		Zoom: ZoomScale{
			MinSpan: 1.0,
			MaxSpan: 97.0,
			MaxZoom: 4.4,
			MinZoom: 2.3,
		},
		AverageSpeedKmh: 59.5,
		Labels: Labels{
			Distance:        "Расстояние: ",
			DistanceUnit:    " км",
			Duration:        "В пути: ~",
			Stops:           "Остановок: ",
			EndpointPadding: "   ",
		},
		Hours: PluralForms{One: "час", Few: "часа", Many: "часов"},
		Days:  PluralForms{One: "день", Few: "дня", Many: "дней"},
		Palette: Palette{
			Idle:       "#2a9fd6",
			Active:     "#77b300",
			Muted:      "#555555",
			Background: "#222222",
		},
	}
}
