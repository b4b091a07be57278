package models

import (
	"testing"
)

func TestComputeFleetStats(t *testing.T) {
	trains := []Train{
		{ID: "KMRL-001", Status: StatusInService, Mileage: 100000},
		{ID: "KMRL-002", Status: StatusMaintenance, Mileage: 150000},
		{ID: "KMRL-003", Status: StatusStandby, Mileage: 60001},
		{ID: "KMRL-004", Status: StatusCleaning, Mileage: 50000},
	}

	stats := ComputeFleetStats(trains, "6 years")

	if stats.TotalTrainsets != 4 {
		t.Errorf("Expected 4 trainsets, got %d", stats.TotalTrainsets)
	}
	if stats.Available != 2 {
		t.Errorf("Expected 2 available, got %d", stats.Available)
	}
	if stats.InMaintenance != 1 {
		t.Errorf("Expected 1 in maintenance, got %d", stats.InMaintenance)
	}
	if stats.AverageAge != "6 years" {
		t.Errorf("Expected average age '6 years', got %q", stats.AverageAge)
	}

	want := float64(100000+150000+60001+50000) / 4
	if stats.AverageMileage != want {
		t.Errorf("Expected average mileage %f, got %f", want, stats.AverageMileage)
	}

	if pct := stats.AvailabilityPercent(); pct != 50 {
		t.Errorf("Expected 50%% availability, got %f", pct)
	}
}

func TestComputeFleetStatsEmpty(t *testing.T) {
	stats := ComputeFleetStats(nil, "")

	if stats.TotalTrainsets != 0 || stats.AverageMileage != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
	if stats.AvailabilityPercent() != 0 {
		t.Error("Expected zero availability for empty fleet")
	}
}

func TestCountActive(t *testing.T) {
	tests := []struct {
		name     string
		statuses []TrainStatus
		expected int
	}{
		{"empty", nil, 0},
		{"all in service", []TrainStatus{StatusInService, StatusInService}, 2},
		{"standby is not active", []TrainStatus{StatusStandby, StatusInService, StatusCleaning}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trains := make([]Train, len(tt.statuses))
			for i, s := range tt.statuses {
				trains[i].Status = s
			}
			if got := CountActive(trains); got != tt.expected {
				t.Errorf("CountActive() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestTrainAvailable(t *testing.T) {
	tests := []struct {
		status   TrainStatus
		expected bool
	}{
		{StatusInService, true},
		{StatusStandby, true},
		{StatusMaintenance, false},
		{StatusCleaning, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			train := Train{Status: tt.status}
			if train.Available() != tt.expected {
				t.Errorf("Available() for %s = %v, want %v", tt.status, train.Available(), tt.expected)
			}
		})
	}
}

func TestStationLocation(t *testing.T) {
	station := Station{ID: 1, Lat: 10.1098, Lon: 76.3496}
	loc := station.Location()

	if loc.Lat != station.Lat || loc.Lon != station.Lon {
		t.Errorf("Location mismatch: expected [%f, %f], got %+v", station.Lat, station.Lon, loc)
	}
}
