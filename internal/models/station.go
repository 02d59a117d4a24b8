package models

import "github.com/transsib/navigator/internal/railway"

type Station struct {
	Index          int     `json:"index"`
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	LineCoordinate float64 `json:"lineCoordinate"`
}

func NewStation(index int, station railway.Station) Station {
	return Station{
		Index:          index,
		Name:           station.Name,
		Lat:            station.Position.Lat,
		Lon:            station.Position.Lon,
		LineCoordinate: station.LineCoordinate,
	}
}

// NewStationList converts stations starting at line index offset.
func NewStationList(offset int, stations []railway.Station) []Station {
	list := make([]Station, len(stations))
	for i, station := range stations {
		list[i] = NewStation(offset+i, station)
	}
	return list
}
