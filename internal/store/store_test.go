package store

import (
	"math"
	"testing"
	"time"

	"github.com/jusunglee/kmrl-twin/internal/models"
)

func testDocument() *models.Document {
	return &models.Document{
		Meta: models.Meta{LastUpdated: time.Now()},
		Infrastructure: models.Infrastructure{
			Stations: []models.Station{
				{ID: 1, Name: "Aluva", Code: "ALV", Chainage: 0.098, Lat: 10.1098, Lon: 76.3496, Type: models.StationTerminal},
				{ID: 5, Name: "Muttom", Code: "MUT", Chainage: 4.716, Lat: 10.0727, Lon: 76.3337, Type: models.StationIntermediate},
				{ID: 15, Name: "M.G Road", Code: "MGR", Chainage: 16.899, Lat: 9.995, Lon: 76.275, Type: models.StationIntermediate},
			},
		},
		RollingStock: models.RollingStock{
			Trains: []models.Train{
				{ID: "KMRL-003", Status: models.StatusInService, CurrentStation: 15},
				{ID: "KMRL-001", Status: models.StatusInService, CurrentStation: 1},
				{ID: "KMRL-002", Status: models.StatusMaintenance, CurrentStation: 5},
			},
		},
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	doc := testDocument()
	s.Load(doc)

	t.Run("GetStation", func(t *testing.T) {
		station, err := s.GetStation(5)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if station.Name != "Muttom" {
			t.Errorf("Expected Muttom, got %s", station.Name)
		}

		if _, err := s.GetStation(99); err == nil {
			t.Error("Expected error for non-existent station")
		}
	})

	t.Run("GetStationByCode", func(t *testing.T) {
		station, err := s.GetStationByCode("mgr")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if station.ID != 15 {
			t.Errorf("Expected station 15, got %d", station.ID)
		}

		if _, err := s.GetStationByCode("XXX"); err == nil {
			t.Error("Expected error for non-existent code")
		}
	})

	t.Run("GetStationsByLocation", func(t *testing.T) {
		// Muttom depot sits at the Muttom station coordinate
		results := s.GetStationsByLocation(models.Location{Lat: 10.0727, Lon: 76.3337}, 2)
		if len(results) != 2 {
			t.Fatalf("Expected 2 stations, got %d", len(results))
		}
		if results[0].Code != "MUT" {
			t.Errorf("Expected nearest station to be MUT, got %s", results[0].Code)
		}
		if results[1].Code != "ALV" {
			t.Errorf("Expected second nearest station to be ALV, got %s", results[1].Code)
		}
	})

	t.Run("GetTrain", func(t *testing.T) {
		train, err := s.GetTrain("kmrl-002")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if train.Status != models.StatusMaintenance {
			t.Errorf("Expected maintenance, got %s", train.Status)
		}

		if _, err := s.GetTrain("KMRL-999"); err == nil {
			t.Error("Expected error for non-existent train")
		}
	})

	t.Run("GetTrainsByStatus", func(t *testing.T) {
		results := s.GetTrainsByStatus(models.StatusInService)
		if len(results) != 2 {
			t.Fatalf("Expected 2 trains in service, got %d", len(results))
		}
		if results[0].ID != "KMRL-001" || results[1].ID != "KMRL-003" {
			t.Errorf("Expected trains ordered by id, got %s, %s", results[0].ID, results[1].ID)
		}

		if len(s.GetTrainsByStatus(models.StatusCleaning)) != 0 {
			t.Error("Expected no cleaning trains")
		}
	})

	t.Run("LoadCopiesStations", func(t *testing.T) {
		doc.Infrastructure.Stations[0].Name = "Changed"
		station, _ := s.GetStation(1)
		if station.Name != "Aluva" {
			t.Errorf("Expected store to hold its own copy, got %s", station.Name)
		}
	})

	t.Run("GetLastUpdate", func(t *testing.T) {
		lastUpdate := s.GetLastUpdate()
		if time.Since(lastUpdate) > time.Minute {
			t.Error("Last update time is too old")
		}
	})
}

func TestDistance(t *testing.T) {
	aluva := models.Location{Lat: 10.1098, Lon: 76.3496}
	tripunithura := models.Location{Lat: 9.945, Lon: 76.225}

	// roughly 22 km as the crow flies
	dist := distance(aluva, tripunithura)
	if dist < 18 || dist > 24 {
		t.Errorf("Expected distance ~22 km, got %.2f km", dist)
	}

	if back := distance(tripunithura, aluva); math.Abs(back-dist) > 1e-9 {
		t.Errorf("Expected symmetric distance, got %.6f and %.6f", dist, back)
	}

	if dist := distance(aluva, aluva); dist != 0 {
		t.Errorf("Expected distance 0, got %.2f", dist)
	}
}

func TestGetStationsByLocationLimit(t *testing.T) {
	s := NewStore()
	s.Load(testDocument())

	if got := s.GetStationsByLocation(models.Location{Lat: 10, Lon: 76.3}, 10); len(got) != 3 {
		t.Errorf("Expected limit to be capped at 3 stations, got %d", len(got))
	}
	if got := s.GetStationsByLocation(models.Location{Lat: 10, Lon: 76.3}, 0); len(got) != 0 {
		t.Errorf("Expected no stations for zero limit, got %d", len(got))
	}
}
