package twin

import (
	"fmt"
	"slices"

	"github.com/jusunglee/kmrl-twin/internal/generator"
	"github.com/jusunglee/kmrl-twin/internal/models"
	"github.com/jusunglee/kmrl-twin/internal/store"
	"go.uber.org/multierr"
)

type intRange struct {
	name   string
	value  int
	lo, hi int
}

// Verify checks the structural and derived-value invariants of a dataset
// Every violation is reported; the result is nil when the document is consistent
func Verify(doc *models.Document) error {
	s := store.NewStore()
	s.Load(doc)

	var err error
	err = multierr.Append(err, verifyStations(doc.Infrastructure.Stations))
	err = multierr.Append(err, verifyTrains(doc.RollingStock.Trains, s))
	err = multierr.Append(err, verifyDerived(doc))
	err = multierr.Append(err, verifySchedule(doc))
	return err
}

func verifyStations(stations []models.Station) error {
	var err error
	if len(stations) != generator.StationCount {
		err = multierr.Append(err, fmt.Errorf("expected %d stations, got %d", generator.StationCount, len(stations)))
	}

	codes := make(map[string]bool, len(stations))
	for i, station := range stations {
		if station.ID != i+1 {
			err = multierr.Append(err, fmt.Errorf("station at position %d has id %d", i, station.ID))
		}
		if codes[station.Code] {
			err = multierr.Append(err, fmt.Errorf("duplicate station code %s", station.Code))
		}
		codes[station.Code] = true

		if i > 0 && station.Chainage <= stations[i-1].Chainage {
			err = multierr.Append(err, fmt.Errorf("chainage not increasing at station %d", station.ID))
		}
		switch station.Type {
		case models.StationTerminal, models.StationIntermediate, models.StationInterchange:
		default:
			err = multierr.Append(err, fmt.Errorf("station %d: unknown type %q", station.ID, station.Type))
		}
	}
	return err
}

func verifyTrains(trains []models.Train, s *store.Store) error {
	var err error
	if len(trains) != generator.TrainCount {
		err = multierr.Append(err, fmt.Errorf("expected %d trains, got %d", generator.TrainCount, len(trains)))
	}

	seen := make(map[string]bool, len(trains))
	for i, train := range trains {
		if want := generator.TrainID(i + 1); train.ID != want {
			err = multierr.Append(err, fmt.Errorf("train at position %d: expected id %s, got %s", i, want, train.ID))
		}
		if seen[train.ID] {
			err = multierr.Append(err, fmt.Errorf("duplicate train id %s", train.ID))
		}
		seen[train.ID] = true

		if _, lookupErr := s.GetStation(train.CurrentStation); lookupErr != nil {
			err = multierr.Append(err, fmt.Errorf("train %s: %w", train.ID, lookupErr))
		}
		if !slices.Contains(models.TrainStatuses, train.Status) {
			err = multierr.Append(err, fmt.Errorf("train %s: unknown status %q", train.ID, train.Status))
		}
		if train.Direction != models.Northbound && train.Direction != models.Southbound {
			err = multierr.Append(err, fmt.Errorf("train %s: unknown direction %q", train.ID, train.Direction))
		}

		c := train.FitnessCertificate
		for _, cert := range []struct {
			field string
			state models.CertificateState
		}{
			{"rolling_stock", c.RollingStock},
			{"signalling", c.Signalling},
			{"telecom", c.Telecom},
		} {
			if !slices.Contains(models.CertificateStates, cert.state) {
				err = multierr.Append(err, fmt.Errorf("train %s: %s certificate %q", train.ID, cert.field, cert.state))
			}
		}

		h := train.HealthMetrics
		for _, r := range []intRange{
			{"speed", train.Speed, 0, generator.MaxSpeed},
			{"door_system", h.DoorSystem, 85, 100},
			{"braking_system", h.BrakingSystem, 90, 100},
			{"hvac_system", h.HVACSystem, 80, 100},
			{"traction_motor", h.TractionMotor, 85, 100},
			{"overall_health", h.OverallHealth, 85, 100},
		} {
			if r.value < r.lo || r.value > r.hi {
				err = multierr.Append(err, fmt.Errorf("train %s: %s %d outside [%d, %d]", train.ID, r.name, r.value, r.lo, r.hi))
			}
		}
	}
	return err
}

// verifyDerived recomputes aggregates and requires exact equality
func verifyDerived(doc *models.Document) error {
	trains := doc.RollingStock.Trains
	want := models.ComputeFleetStats(trains, doc.RollingStock.FleetStats.AverageAge)
	got := doc.RollingStock.FleetStats

	var err error
	if got.TotalTrainsets != want.TotalTrainsets {
		err = multierr.Append(err, fmt.Errorf("fleet_stats.total_trainsets %d, trains list has %d", got.TotalTrainsets, want.TotalTrainsets))
	}
	if got.Available != want.Available {
		err = multierr.Append(err, fmt.Errorf("fleet_stats.available %d, trains list has %d", got.Available, want.Available))
	}
	if got.InMaintenance != want.InMaintenance {
		err = multierr.Append(err, fmt.Errorf("fleet_stats.in_maintenance %d, trains list has %d", got.InMaintenance, want.InMaintenance))
	}
	if got.AverageMileage != want.AverageMileage {
		err = multierr.Append(err, fmt.Errorf("fleet_stats.average_mileage %v, trains list gives %v", got.AverageMileage, want.AverageMileage))
	}

	status := doc.Operations.CurrentStatus
	if active := models.CountActive(trains); status.ActiveTrains != active {
		err = multierr.Append(err, fmt.Errorf("current_status.active_trains %d, trains list has %d", status.ActiveTrains, active))
	}
	if status.TotalTrains != len(trains) {
		err = multierr.Append(err, fmt.Errorf("current_status.total_trains %d, trains list has %d", status.TotalTrains, len(trains)))
	}
	return err
}

func verifySchedule(doc *models.Document) error {
	schedule := doc.Operations.MaintenanceSchedule

	var err error
	if len(schedule) != generator.ScheduledTrains {
		err = multierr.Append(err, fmt.Errorf("expected %d maintenance entries, got %d", generator.ScheduledTrains, len(schedule)))
	}

	trains := doc.RollingStock.Trains
	leading := make(map[string]bool, generator.ScheduledTrains)
	for _, train := range trains[:min(generator.ScheduledTrains, len(trains))] {
		leading[train.ID] = true
	}

	seen := make(map[string]bool, len(schedule))
	for _, entry := range schedule {
		if !leading[entry.TrainID] {
			err = multierr.Append(err, fmt.Errorf("maintenance entry for %s is not one of the first %d trains", entry.TrainID, generator.ScheduledTrains))
		}
		if seen[entry.TrainID] {
			err = multierr.Append(err, fmt.Errorf("duplicate maintenance entry for %s", entry.TrainID))
		}
		seen[entry.TrainID] = true
	}
	return err
}
