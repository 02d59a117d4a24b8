package railway

// Marker is a labelled station on the map together with its line index.
type Marker struct {
	Index int
	Station
}

// Result is everything the presentation layer needs to redraw after a
// selection change.
type Result struct {
	State    SelectionState
	Viewport Viewport
	// Summary is nil unless a route is formed.
	Summary *TripSummary

	// Segment holds the highlighted stations, Boundaries the labelled markers.
	Segment    []Station
	Boundaries []Marker

	HighlightColor string
}

// RouteFormed reports whether both endpoints were selected.
func (r Result) RouteFormed() bool {
	return r.State.RouteFormed()
}

// Engine computes route segments, viewports and trip summaries over a fixed
// line. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	line   *Line
	config Config
}

// NewEngine returns an Engine for line. A nil or empty line is rejected so
// that the default view always has something to show.
func NewEngine(line *Line, config Config) (*Engine, error) {
	if line == nil || line.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	return &Engine{line: line, config: config}, nil
}

// Line returns the engine's station sequence.
func (e *Engine) Line() *Line {
	return e.line
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// DefaultViewport is the whole-network view.
func (e *Engine) DefaultViewport() Viewport {
	return e.config.DefaultViewport
}

// Resolve maps a selection onto the line.
func (e *Engine) Resolve(sel Selection) (SelectionState, error) {
	return resolve(e.line, e.config, sel)
}

// Fit frames coords using the engine's zoom scale.
func (e *Engine) Fit(coords []Coordinate) Viewport {
	return FitViewport(coords, e.config.Zoom)
}

// Summarize describes the trip over r. fromName and toName are echoed back as
// the endpoint labels in the order the user picked them.
func (e *Engine) Summarize(r RouteRange, fromName, toName string) TripSummary {
	return summarize(e.line, e.config, r, fromName, toName)
}

// Compute runs the full pipeline for one selection.
func (e *Engine) Compute(sel Selection) (Result, error) {
	state, err := e.Resolve(sel)
	if err != nil {
		return Result{}, err
	}

	r := state.Range
	result := Result{
		State:          state,
		Viewport:       e.config.DefaultViewport,
		Segment:        e.line.Segment(r.Start, r.End),
		HighlightColor: e.config.Palette.Active,
	}

	switch state.Kind {
	case SelectionRange:
		result.Viewport = e.Fit(e.line.Coordinates(r.Start, r.End))
		summary := e.Summarize(r, sel.From, sel.To)
		result.Summary = &summary
		result.Boundaries = []Marker{e.marker(r.Start), e.marker(r.End)}
	case SelectionSinglePoint:
		result.Boundaries = []Marker{e.marker(r.Start)}
	default:
		result.Boundaries = []Marker{e.marker(0), e.marker(e.line.Len() - 1)}
		result.HighlightColor = e.config.Palette.Idle
	}

	return result, nil
}

func (e *Engine) marker(i int) Marker {
	return Marker{Index: i, Station: e.line.Station(i)}
}
