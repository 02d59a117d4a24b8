package railway

// Side identifies which endpoint of a selection a name belongs to.
type Side string

const (
	SideFrom Side = "from"
	SideTo   Side = "to"
)

// SelectionKind tells the presentation layer how to draw a selection.
type SelectionKind int

const (
	// SelectionFull shows the whole line, nothing selected.
	SelectionFull SelectionKind = iota
	// SelectionSinglePoint marks exactly one station.
	SelectionSinglePoint
	// SelectionRange highlights the segment between two stations.
	SelectionRange
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionSinglePoint:
		return "single_point"
	case SelectionRange:
		return "range"
	default:
		return "full"
	}
}

// Selection is the raw pair of dropdown values.
type Selection struct {
	From string
	To   string
}

// RouteRange is an inclusive index interval with Start <= End.
type RouteRange struct {
	Start int
	End   int
}

// StopCount is the number of hops between the two ends of the range.
func (r RouteRange) StopCount() int {
	return r.End - r.Start
}

// SelectionState is a resolved selection.
type SelectionState struct {
	Kind  SelectionKind
	Range RouteRange
}

// RouteFormed is true only for a two-station selection.
func (s SelectionState) RouteFormed() bool {
	return s.Kind == SelectionRange
}

func isUnset(name, placeholder string) bool {
	return name == "" || name == placeholder
}

func lookup(line *Line, side Side, name string) (int, error) {
	i, ok := line.IndexOf(name)
	if !ok {
		return 0, &UnknownStationError{Side: side, Name: name}
	}
	return i, nil
}

// resolve turns a selection into an index range. The case order is fixed:
// only from, only to, both, neither.
func resolve(line *Line, cfg Config, sel Selection) (SelectionState, error) {
	fromSet := !isUnset(sel.From, cfg.FromPlaceholder)
	toSet := !isUnset(sel.To, cfg.ToPlaceholder)

	var fromIdx, toIdx int
	var err error
	if fromSet {
		if fromIdx, err = lookup(line, SideFrom, sel.From); err != nil {
			return SelectionState{}, err
		}
	}
	if toSet {
		if toIdx, err = lookup(line, SideTo, sel.To); err != nil {
			return SelectionState{}, err
		}
	}

	switch {
	case fromSet && !toSet:
		return SelectionState{
			Kind:  SelectionSinglePoint,
			Range: RouteRange{Start: fromIdx, End: fromIdx},
		}, nil
	case toSet && !fromSet:
		return SelectionState{
			Kind:  SelectionSinglePoint,
			Range: RouteRange{Start: toIdx, End: toIdx},
		}, nil
	case fromSet && toSet:
		return SelectionState{
			Kind:  SelectionRange,
			Range: RouteRange{Start: min(fromIdx, toIdx), End: max(fromIdx, toIdx)},
		}, nil
	default:
		return SelectionState{
			Kind:  SelectionFull,
			Range: RouteRange{Start: 0, End: line.Len() - 1},
		}, nil
	}
}
