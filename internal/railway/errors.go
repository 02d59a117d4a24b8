package railway

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when a line is built from zero stations.
	ErrEmptyDataset = errors.New("station dataset is empty")

	// ErrUnknownStation is matched by every UnknownStationError.
	ErrUnknownStation = errors.New("unknown station")
)

// UnknownStationError reports a selected name that is not on the line.
type UnknownStationError struct {
	Side Side
	Name string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("unknown %s station %q", e.Side, e.Name)
}

func (e *UnknownStationError) Is(target error) bool {
	return target == ErrUnknownStation
}
