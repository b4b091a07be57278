package models

import (
	"time"

	"github.com/google/uuid"
)

// StationType classifies a station on the corridor
type StationType string

const (
	StationTerminal     StationType = "terminal"
	StationIntermediate StationType = "intermediate"
	StationInterchange  StationType = "interchange"
)

// TrainStatus is the operational state of a trainset
type TrainStatus string

const (
	StatusInService   TrainStatus = "in_service"
	StatusMaintenance TrainStatus = "maintenance"
	StatusStandby     TrainStatus = "standby"
	StatusCleaning    TrainStatus = "cleaning"
)

// TrainStatuses lists every status in sampling order
var TrainStatuses = []TrainStatus{StatusInService, StatusMaintenance, StatusStandby, StatusCleaning}

// Direction of travel along the corridor
type Direction string

const (
	Northbound Direction = "northbound"
	Southbound Direction = "southbound"
)

// CertificateState is the validity of one fitness certificate field
type CertificateState string

const (
	CertValid   CertificateState = "valid"
	CertExpired CertificateState = "expired"
	CertPending CertificateState = "pending"
)

// CertificateStates lists every certificate state in sampling order
var CertificateStates = []CertificateState{CertValid, CertExpired, CertPending}

// Location represents a geographic coordinate
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Station is one fixed stop on the corridor. Chainage is in km from the origin.
type Station struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Code     string      `json:"code"`
	Chainage float64     `json:"chainage"`
	Lat      float64     `json:"lat"`
	Lon      float64     `json:"lon"`
	Type     StationType `json:"type"`
	Height   float64     `json:"height"`
}

// Location returns the station coordinate
func (s Station) Location() Location {
	return Location{Lat: s.Lat, Lon: s.Lon}
}

// Capacity of a trainset
type Capacity struct {
	Seated int `json:"seated"`
	Total  int `json:"total"`
}

// FitnessCertificate holds per-subsystem validity
type FitnessCertificate struct {
	ValidUntil   time.Time        `json:"valid_until"`
	RollingStock CertificateState `json:"rolling_stock"`
	Signalling   CertificateState `json:"signalling"`
	Telecom      CertificateState `json:"telecom"`
}

// Branding describes an advertising wrap. Advertiser is null when unsold.
type Branding struct {
	IsWrapped              bool    `json:"is_wrapped"`
	Advertiser             *string `json:"advertiser"`
	ContractHoursRemaining int     `json:"contract_hours_remaining"`
}

// HealthMetrics are percentage scores per subsystem
type HealthMetrics struct {
	DoorSystem    int `json:"door_system"`
	BrakingSystem int `json:"braking_system"`
	HVACSystem    int `json:"hvac_system"`
	TractionMotor int `json:"traction_motor"`
	OverallHealth int `json:"overall_health"`
}

// Train represents one trainset in the fleet
type Train struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Type               string             `json:"type"`
	Capacity           Capacity           `json:"capacity"`
	Manufacturer       string             `json:"manufacturer"`
	Status             TrainStatus        `json:"status"`
	CurrentStation     int                `json:"current_station"`
	Direction          Direction          `json:"direction"`
	Speed              int                `json:"speed"`
	Mileage            int                `json:"mileage"`
	LastMaintenance    time.Time          `json:"last_maintenance"`
	FitnessCertificate FitnessCertificate `json:"fitness_certificate"`
	Branding           Branding           `json:"branding"`
	HealthMetrics      HealthMetrics      `json:"health_metrics"`
}

// Available reports whether the train counts toward fleet availability
func (t Train) Available() bool {
	return t.Status == StatusInService || t.Status == StatusStandby
}

// DepotCapacity is the fixed track and bay layout
type DepotCapacity struct {
	TotalTracks     int `json:"total_tracks"`
	MaintenanceBays int `json:"maintenance_bays"`
	CleaningBays    int `json:"cleaning_bays"`
	InspectionBays  int `json:"inspection_bays"`
}

// DepotOccupancy is not checked against DepotCapacity
type DepotOccupancy struct {
	TotalTrains int `json:"total_trains"`
	Maintenance int `json:"maintenance"`
	Cleaning    int `json:"cleaning"`
	Standby     int `json:"standby"`
}

// DepotStaff holds headcounts
type DepotStaff struct {
	Total           int `json:"total"`
	CurrentShift    int `json:"current_shift"`
	MaintenanceCrew int `json:"maintenance_crew"`
	CleaningCrew    int `json:"cleaning_crew"`
	Security        int `json:"security"`
}

// Depot represents a stabling and maintenance yard
type Depot struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Location         Location       `json:"location"`
	Capacity         DepotCapacity  `json:"capacity"`
	CurrentOccupancy DepotOccupancy `json:"current_occupancy"`
	Staff            DepotStaff     `json:"staff"`
}

// Weather at snapshot time. Visibility is in km.
type Weather struct {
	Condition   string `json:"condition"`
	Temperature int    `json:"temperature"`
	Humidity    int    `json:"humidity"`
	Visibility  int    `json:"visibility"`
}

// OperationalStatus is a point-in-time system snapshot
type OperationalStatus struct {
	Timestamp         time.Time `json:"timestamp"`
	SystemStatus      string    `json:"system_status"`
	TotalTrains       int       `json:"total_trains"`
	ActiveTrains      int       `json:"active_trains"`
	PassengerLoad     int       `json:"passenger_load"`
	DailyRidership    int       `json:"daily_ridership"`
	ServiceFrequency  string    `json:"service_frequency"`
	Punctuality       float64   `json:"punctuality"`
	Incidents         int       `json:"incidents"`
	Revenue           int       `json:"revenue"`
	EnergyConsumption int       `json:"energy_consumption"`
	Weather           Weather   `json:"weather"`
}

// MaintenanceEntry schedules work for one train. EstimatedDuration is in hours.
type MaintenanceEntry struct {
	TrainID           string    `json:"train_id"`
	Type              string    `json:"type"`
	ScheduledTime     time.Time `json:"scheduled_time"`
	EstimatedDuration int       `json:"estimated_duration"`
	Priority          string    `json:"priority"`
	MaintenanceBay    int       `json:"maintenance_bay"`
	CrewAssigned      string    `json:"crew_assigned"`
}

// Meta describes the document itself
type Meta struct {
	SnapshotID    uuid.UUID `json:"snapshot_id"`
	Version       string    `json:"version"`
	LastUpdated   time.Time `json:"last_updated"`
	System        string    `json:"system"`
	Coverage      string    `json:"coverage"`
	TotalLengthKm float64   `json:"total_length_km"`
}

// TrackSpecification holds fixed line constants
type TrackSpecification struct {
	Gauge           string `json:"gauge"`
	Electrification string `json:"electrification"`
	Signalling      string `json:"signalling"`
	MaximumSpeed    int    `json:"maximum_speed"`
	MinimumHeadway  int    `json:"minimum_headway"`
}

// Infrastructure groups fixed assets
type Infrastructure struct {
	Stations            []Station          `json:"stations"`
	Depots              []Depot            `json:"depots"`
	TrackSpecifications TrackSpecification `json:"track_specifications"`
}

// FleetStats are derived from the train list, never sampled
type FleetStats struct {
	TotalTrainsets int     `json:"total_trainsets"`
	Available      int     `json:"available"`
	InMaintenance  int     `json:"in_maintenance"`
	AverageAge     string  `json:"average_age"`
	AverageMileage float64 `json:"average_mileage"`
}

// AvailabilityPercent is Available as a share of the fleet
func (f FleetStats) AvailabilityPercent() float64 {
	if f.TotalTrainsets == 0 {
		return 0
	}
	return float64(f.Available) / float64(f.TotalTrainsets) * 100
}

// RollingStock groups the fleet
type RollingStock struct {
	Trains     []Train    `json:"trains"`
	FleetStats FleetStats `json:"fleet_stats"`
}

// ServicePattern holds fixed timetable constants
type ServicePattern struct {
	WeekdayFrequency string   `json:"weekday_frequency"`
	WeekendFrequency string   `json:"weekend_frequency"`
	FirstTrain       string   `json:"first_train"`
	LastTrain        string   `json:"last_train"`
	PeakHours        []string `json:"peak_hours"`
}

// Operations groups runtime state
type Operations struct {
	CurrentStatus       OperationalStatus  `json:"current_status"`
	MaintenanceSchedule []MaintenanceEntry `json:"maintenance_schedule"`
	ServicePattern      ServicePattern     `json:"service_pattern"`
}

// Document is the root of the serialized digital twin
type Document struct {
	Meta           Meta           `json:"meta"`
	Infrastructure Infrastructure `json:"infrastructure"`
	RollingStock   RollingStock   `json:"rolling_stock"`
	Operations     Operations     `json:"operations"`
}

// ComputeFleetStats aggregates fleet statistics from trains
func ComputeFleetStats(trains []Train, averageAge string) FleetStats {
	stats := FleetStats{
		TotalTrainsets: len(trains),
		AverageAge:     averageAge,
	}

	total := 0
	for _, t := range trains {
		if t.Available() {
			stats.Available++
		}
		if t.Status == StatusMaintenance {
			stats.InMaintenance++
		}
		total += t.Mileage
	}

	if len(trains) > 0 {
		stats.AverageMileage = float64(total) / float64(len(trains))
	}

	return stats
}

// CountActive returns the number of trains in service
func CountActive(trains []Train) int {
	n := 0
	for _, t := range trains {
		if t.Status == StatusInService {
			n++
		}
	}
	return n
}
