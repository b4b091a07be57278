package generator

import (
	"testing"

	"github.com/jusunglee/kmrl-twin/internal/models"
)

func TestStationsTable(t *testing.T) {
	stations := Stations()

	if len(stations) != StationCount {
		t.Fatalf("Expected %d stations, got %d", StationCount, len(stations))
	}

	codes := make(map[string]bool)
	for i, station := range stations {
		if station.ID != i+1 {
			t.Errorf("Station %d: expected id %d, got %d", i, i+1, station.ID)
		}
		if codes[station.Code] {
			t.Errorf("Duplicate station code %s", station.Code)
		}
		codes[station.Code] = true

		if i > 0 && station.Chainage <= stations[i-1].Chainage {
			t.Errorf("Chainage not increasing at %s: %.3f <= %.3f",
				station.Code, station.Chainage, stations[i-1].Chainage)
		}
		if station.Height != platformHeight {
			t.Errorf("Station %s: expected height %.1f, got %.1f", station.Code, platformHeight, station.Height)
		}
		if station.Name == "" {
			t.Errorf("Station %d missing name", station.ID)
		}
	}
}

func TestStationsTerminals(t *testing.T) {
	stations := Stations()

	tests := []struct {
		name     string
		station  models.Station
		expected models.StationType
	}{
		{"first is terminal", stations[0], models.StationTerminal},
		{"last is terminal", stations[len(stations)-1], models.StationTerminal},
		{"kalamassery is interchange", stations[5], models.StationInterchange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.station.Type != tt.expected {
				t.Errorf("Station %s: expected type %s, got %s", tt.station.Code, tt.expected, tt.station.Type)
			}
		})
	}

	terminals := 0
	for _, s := range stations {
		if s.Type == models.StationTerminal {
			terminals++
		}
	}
	if terminals != 2 {
		t.Errorf("Expected exactly 2 terminals, got %d", terminals)
	}
}

func TestStationsReturnsCopy(t *testing.T) {
	first := Stations()
	first[0].Name = "Changed"

	second := Stations()
	if second[0].Name != "Aluva" {
		t.Errorf("Expected table to be unaffected by caller mutation, got %q", second[0].Name)
	}
}
