package railway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourWord(t *testing.T) {
	forms := DefaultConfig().Hours

	tests := []struct {
		hours    int
		expected string
	}{
		{0, "часов"},
		{1, "часов"}, // 1 % 100 is not above 20
		{2, "часа"},
		{3, "часа"},
		{4, "часа"},
		{5, "часов"},
		{11, "часов"},
		{12, "часа"},
		{20, "часов"},
		{21, "час"},
		{22, "часа"},
		{23, "часа"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HourWord(tt.hours, forms), "hours=%d", tt.hours)
	}
}

func TestDayWord(t *testing.T) {
	forms := DefaultConfig().Days

	tests := []struct {
		days     int
		expected string
	}{
		{1, "дня"},
		{2, "дня"},
		{4, "дня"},
		{5, "дней"},
		{9, "дней"},
		{10, "дня"}, // last digit 0 is below 5
		{11, "дня"},
		{21, "день"},
		{25, "дней"},
		{31, "день"},
		{101, "дня"},
		{121, "день"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DayWord(tt.days, forms), "days=%d", tt.days)
	}
}

func TestFormatDuration(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "5 часов", FormatDuration(0, 5, cfg))
	assert.Equal(t, "1 дня, 21 час", FormatDuration(1, 21, cfg))
	assert.Equal(t, "21 день, 0 часов", FormatDuration(21, 0, cfg))
}

func TestSummarizeScenarios(t *testing.T) {
	tests := []struct {
		name        string
		coordinates []float64
		distance    int
		days        int
		hours       int
		duration    string
		stops       int
	}{
		{
			name:        "five hours without a day part",
			coordinates: []float64{0, 60, 120, 180, 240, 300},
			distance:    300,
			days:        0,
			hours:       5,
			duration:    "5 часов",
			stops:       5,
		},
		{
			name:        "twenty one hours takes the singular form",
			coordinates: []float64{0, 1260},
			distance:    1260,
			days:        0,
			hours:       21,
			duration:    "21 час",
			stops:       1,
		},
		{
			name:        "twenty one days takes the singular form",
			coordinates: []float64{0, 10000, 30000},
			distance:    30000,
			days:        21,
			hours:       0,
			duration:    "21 день, 0 часов",
			stops:       2,
		},
		{
			name:        "fractional line coordinates are truncated",
			coordinates: []float64{0.4, 119.9},
			distance:    119,
			days:        0,
			hours:       2,
			duration:    "2 часа",
			stops:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := newLinearLine(t, tt.coordinates...)
			engine := newTestEngine(t, line)
			last := line.Len() - 1

			summary := engine.Summarize(RouteRange{Start: 0, End: last}, "A", line.Station(last).Name)

			assert.Equal(t, tt.distance, summary.DistanceKm)
			assert.InDelta(t, float64(tt.distance)/59.5, summary.TravelHours, 1e-9)
			assert.Equal(t, tt.days, summary.Days)
			assert.Equal(t, tt.hours, summary.Hours)
			assert.Equal(t, tt.duration, summary.Duration)
			assert.Equal(t, "В пути: ~"+tt.duration, summary.DurationText)
			assert.Equal(t, tt.stops, summary.StopCount)
		})
	}
}

func TestSummarizeDisplayStrings(t *testing.T) {
	engine := newTestEngine(t, newTestLine(t))

	summary := engine.Summarize(RouteRange{Start: 0, End: 5}, "Москва", "Омск")

	assert.Equal(t, "   Москва", summary.FromLabel)
	assert.Equal(t, "   Омск", summary.ToLabel)
	assert.Equal(t, "Расстояние: 2712 км", summary.DistanceText)
	assert.Equal(t, "В пути: ~1 дня, 21 час", summary.DurationText)
	assert.Equal(t, "Остановок: 5", summary.StopsText)
}

func TestSummarizeIsSymmetric(t *testing.T) {
	line := newTestLine(t)
	engine := newTestEngine(t, line)
	names := line.Names()

	for i := range names {
		for j := i + 1; j < len(names); j++ {
			forward, err := engine.Compute(Selection{From: names[i], To: names[j]})
			assert.NoError(t, err)
			backward, err := engine.Compute(Selection{From: names[j], To: names[i]})
			assert.NoError(t, err)

			assert.Equal(t, forward.Summary.DistanceKm, backward.Summary.DistanceKm)
			assert.Equal(t, forward.Summary.Duration, backward.Summary.Duration)
			assert.Equal(t, forward.Summary.StopCount, backward.Summary.StopCount)
			assert.Equal(t, forward.Summary.FromLabel, backward.Summary.ToLabel)
			assert.Equal(t, forward.Summary.ToLabel, backward.Summary.FromLabel)
		}
	}
}
