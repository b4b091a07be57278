package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jusunglee/kmrl-twin/internal/models"
)

const (
	// StationCount is the size of the fixed corridor table
	StationCount = 25
	// TrainCount is the number of trainsets synthesized per run
	TrainCount = 25
	// ScheduledTrains is how many leading trains receive a maintenance entry
	ScheduledTrains = 10

	// TrainIDPrefix precedes the zero-padded train sequence number
	TrainIDPrefix = "KMRL-"

	// MaxSpeed is the line speed limit in km/h
	MaxSpeed = 80
	// MinimumHeadway is the signalled train separation in seconds
	MinimumHeadway = 90
	// RouteLengthKm is the Phase 1 corridor length
	RouteLengthKm = 27.96
	// DocumentVersion is written to meta.version
	DocumentVersion = "1.0"
)

var (
	advertisers      = []string{"Coca-Cola", "Samsung", "Kerala Tourism"}
	weatherCondition = []string{"sunny", "cloudy", "rainy"}
	maintenanceTypes = []string{"daily_inspection", "weekly_maintenance", "monthly_overhaul"}
	priorities       = []string{"high", "medium", "low"}
)

// Generator synthesizes one digital twin snapshot per call
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a generator seeded from system entropy
func New() *Generator {
	return NewWithSource(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), time.Now)
}

// NewWithSource creates a generator with a caller-supplied random source and clock
func NewWithSource(rng *rand.Rand, now func() time.Time) *Generator {
	return &Generator{
		rng: rng,
		now: now,
	}
}

// TrainID formats the id for the n-th trainset (1-based)
func TrainID(n int) string {
	return fmt.Sprintf("%s%03d", TrainIDPrefix, n)
}

// Generate builds a complete document from fresh random draws
func (g *Generator) Generate() *models.Document {
	now := g.now()

	stations := Stations()
	trains := g.generateTrains(stations, now)
	depots := []models.Depot{g.generateDepot()}
	status := g.generateStatus(trains, now)
	schedule := g.generateMaintenanceSchedule(trains, now)

	return &models.Document{
		Meta: models.Meta{
			SnapshotID:    g.snapshotID(),
			Version:       DocumentVersion,
			LastUpdated:   now,
			System:        "KMRL Digital Twin",
			Coverage:      "Phase 1 - Aluva to Tripunithura",
			TotalLengthKm: RouteLengthKm,
		},
		Infrastructure: models.Infrastructure{
			Stations: stations,
			Depots:   depots,
			TrackSpecifications: models.TrackSpecification{
				Gauge:           "1435mm (Standard Gauge)",
				Electrification: "750V DC Third Rail",
				Signalling:      "CBTC (Communication Based Train Control)",
				MaximumSpeed:    MaxSpeed,
				MinimumHeadway:  MinimumHeadway,
			},
		},
		RollingStock: models.RollingStock{
			Trains:     trains,
			FleetStats: models.ComputeFleetStats(trains, "6 years"),
		},
		Operations: models.Operations{
			CurrentStatus:       status,
			MaintenanceSchedule: schedule,
			ServicePattern: models.ServicePattern{
				WeekdayFrequency: "8 minutes",
				WeekendFrequency: "10 minutes",
				FirstTrain:       "06:00",
				LastTrain:        "22:30",
				PeakHours:        []string{"07:00-09:00", "17:00-19:00"},
			},
		},
	}
}

func (g *Generator) generateTrains(stations []models.Station, now time.Time) []models.Train {
	trains := make([]models.Train, 0, TrainCount)

	for i := 1; i <= TrainCount; i++ {
		trains = append(trains, models.Train{
			ID:              TrainID(i),
			Name:            fmt.Sprintf("Train Set %d", i),
			Type:            "4-car EMU",
			Capacity:        models.Capacity{Seated: 140, Total: 600},
			Manufacturer:    "Alstom",
			Status:          pick(g, models.TrainStatuses),
			CurrentStation:  pick(g, stations).ID,
			Direction:       pick(g, []models.Direction{models.Northbound, models.Southbound}),
			Speed:           g.between(0, MaxSpeed),
			Mileage:         g.between(50000, 200000),
			LastMaintenance: now.Add(-days(g.between(1, 30))),
			FitnessCertificate: models.FitnessCertificate{
				ValidUntil:   now.Add(days(g.between(30, 90))),
				RollingStock: pick(g, models.CertificateStates),
				Signalling:   pick(g, models.CertificateStates),
				Telecom:      pick(g, models.CertificateStates),
			},
			Branding: g.generateBranding(),
			HealthMetrics: models.HealthMetrics{
				DoorSystem:    g.between(85, 100),
				BrakingSystem: g.between(90, 100),
				HVACSystem:    g.between(80, 100),
				TractionMotor: g.between(85, 100),
				OverallHealth: g.between(85, 100),
			},
		})
	}

	return trains
}

// generateBranding samples wrap, advertiser and hours independently
func (g *Generator) generateBranding() models.Branding {
	b := models.Branding{IsWrapped: g.coin()}

	// one slot beyond the list stands for "no advertiser"
	if n := g.rng.IntN(len(advertisers) + 1); n < len(advertisers) {
		advertiser := advertisers[n]
		b.Advertiser = &advertiser
	}

	if g.coin() {
		b.ContractHoursRemaining = g.between(0, 100)
	}

	return b
}

func (g *Generator) generateDepot() models.Depot {
	return models.Depot{
		ID:       "muttom_depot",
		Name:     "Muttom Depot",
		Location: models.Location{Lat: 10.0727, Lon: 76.3337},
		Capacity: models.DepotCapacity{
			TotalTracks:     15,
			MaintenanceBays: 4,
			CleaningBays:    3,
			InspectionBays:  2,
		},
		CurrentOccupancy: models.DepotOccupancy{
			TotalTrains: g.between(10, 15),
			Maintenance: g.between(2, 4),
			Cleaning:    g.between(1, 3),
			Standby:     g.between(5, 8),
		},
		Staff: models.DepotStaff{
			Total:           150,
			CurrentShift:    45,
			MaintenanceCrew: 15,
			CleaningCrew:    10,
			Security:        5,
		},
	}
}

// generateStatus derives train counts from trains; everything else is sampled
func (g *Generator) generateStatus(trains []models.Train, now time.Time) models.OperationalStatus {
	return models.OperationalStatus{
		Timestamp:         now,
		SystemStatus:      "operational",
		TotalTrains:       len(trains),
		ActiveTrains:      models.CountActive(trains),
		PassengerLoad:     g.between(15000, 25000),
		DailyRidership:    g.between(80000, 100000),
		ServiceFrequency:  "8 minutes",
		Punctuality:       97.5 + g.rng.Float64()*2.0,
		Incidents:         g.between(0, 2),
		Revenue:           g.between(120000, 170000),
		EnergyConsumption: g.between(2000, 2800),
		Weather: models.Weather{
			Condition:   pick(g, weatherCondition),
			Temperature: g.between(25, 35),
			Humidity:    g.between(70, 95),
			Visibility:  g.between(8, 15),
		},
	}
}

func (g *Generator) generateMaintenanceSchedule(trains []models.Train, now time.Time) []models.MaintenanceEntry {
	n := min(ScheduledTrains, len(trains))
	schedule := make([]models.MaintenanceEntry, 0, n)

	for _, train := range trains[:n] {
		schedule = append(schedule, models.MaintenanceEntry{
			TrainID:           train.ID,
			Type:              pick(g, maintenanceTypes),
			ScheduledTime:     now.Add(time.Duration(g.between(1, 48)) * time.Hour),
			EstimatedDuration: g.between(2, 8),
			Priority:          pick(g, priorities),
			MaintenanceBay:    g.between(1, 4),
			CrewAssigned:      fmt.Sprintf("Maintenance Team %d", g.between(1, 5)),
		})
	}

	return schedule
}

// snapshotID draws a v4 UUID from the generator's source so seeded runs stay reproducible
func (g *Generator) snapshotID() uuid.UUID {
	return uuid.Must(uuid.NewRandomFromReader(rngReader{g.rng}))
}

// rngReader adapts a rand.Rand to io.Reader; it never fails
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}

// between returns a uniform int in [lo, hi]
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) coin() bool {
	return g.rng.IntN(2) == 1
}

func pick[T any](g *Generator, items []T) T {
	return items[g.rng.IntN(len(items))]
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
