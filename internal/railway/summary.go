package railway

import (
	"math"
	"strconv"
)

// TripSummary describes a formed route in display-ready form.
type TripSummary struct {
	DistanceKm  int
	TravelHours float64
	Days        int
	Hours       int
	// Duration is the bare "N дней, M часов" text without its label.
	Duration  string
	StopCount int

	FromLabel string
	ToLabel   string

	DistanceText string
	DurationText string
	StopsText    string
}

// HourWord picks the agreement form of "hour" for n.
func HourWord(n int, forms PluralForms) string {
	switch {
	case n%10 == 1 && n%100 > 20:
		return forms.One
	case n%10 == 2 || n%10 == 3 || n%10 == 4:
		return forms.Few
	default:
		return forms.Many
	}
}

// DayWord picks the agreement form of "day" for n. Unlike HourWord the few
// form covers every last digit below five.
func DayWord(n int, forms PluralForms) string {
	switch {
	case n%10 == 1 && n%100 > 20:
		return forms.One
	case n%10 < 5:
		return forms.Few
	default:
		return forms.Many
	}
}

// FormatDuration renders days and hours, omitting the day part when zero.
func FormatDuration(days, hours int, cfg Config) string {
	text := strconv.Itoa(hours) + " " + HourWord(hours, cfg.Hours)
	if days > 0 {
		text = strconv.Itoa(days) + " " + DayWord(days, cfg.Days) + ", " + text
	}
	return text
}

func summarize(line *Line, cfg Config, r RouteRange, fromName, toName string) TripSummary {
	distance := int(line.Station(r.End).LineCoordinate - line.Station(r.Start).LineCoordinate)
	travelHours := float64(distance) / cfg.AverageSpeedKmh
	days := int(math.Floor(travelHours / 24))
	hours := int(math.Floor(math.Mod(travelHours, 24)))
	duration := FormatDuration(days, hours, cfg)
	stops := r.StopCount()

	return TripSummary{
		DistanceKm:   distance,
		TravelHours:  travelHours,
		Days:         days,
		Hours:        hours,
		Duration:     duration,
		StopCount:    stops,
		FromLabel:    cfg.Labels.EndpointPadding + fromName,
		ToLabel:      cfg.Labels.EndpointPadding + toName,
		DistanceText: cfg.Labels.Distance + strconv.Itoa(distance) + cfg.Labels.DistanceUnit,
		DurationText: cfg.Labels.Duration + duration,
		StopsText:    cfg.Labels.Stops + strconv.Itoa(stops),
	}
}
