package store

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jusunglee/kmrl-twin/internal/models"
)

// Store indexes one generated document for lookups by id, code and location
type Store struct {
	mu             sync.RWMutex
	stations       []models.Station
	stationsByID   map[int]*models.Station
	stationsByCode map[string]*models.Station
	trains         map[string]*models.Train
	trainsByStatus map[models.TrainStatus][]*models.Train
	lastUpdate     time.Time
}

// NewStore creates a new store instance
func NewStore() *Store {
	return &Store{
		stationsByID:   make(map[int]*models.Station),
		stationsByCode: make(map[string]*models.Station),
		trains:         make(map[string]*models.Train),
		trainsByStatus: make(map[models.TrainStatus][]*models.Train),
	}
}

// Load replaces the indexed data with the contents of doc
func (s *Store) Load(doc *models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stations = make([]models.Station, len(doc.Infrastructure.Stations))
	copy(s.stations, doc.Infrastructure.Stations)
	s.lastUpdate = doc.Meta.LastUpdated

	// Rebuild indices
	s.stationsByID = make(map[int]*models.Station, len(s.stations))
	s.stationsByCode = make(map[string]*models.Station, len(s.stations))
	for i := range s.stations {
		station := &s.stations[i]
		s.stationsByID[station.ID] = station
		s.stationsByCode[station.Code] = station
	}

	s.trains = make(map[string]*models.Train, len(doc.RollingStock.Trains))
	s.trainsByStatus = make(map[models.TrainStatus][]*models.Train)
	for i := range doc.RollingStock.Trains {
		train := doc.RollingStock.Trains[i]
		s.trains[train.ID] = &train
		s.trainsByStatus[train.Status] = append(s.trainsByStatus[train.Status], &train)
	}

	// Keep fleet order stable regardless of map iteration
	for status := range s.trainsByStatus {
		sort.Slice(s.trainsByStatus[status], func(i, j int) bool {
			return s.trainsByStatus[status][i].ID < s.trainsByStatus[status][j].ID
		})
	}
}

// GetStation returns the station with the given id
func (s *Store) GetStation(id int) (models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	station, ok := s.stationsByID[id]
	if !ok {
		return models.Station{}, fmt.Errorf("station %d not found", id)
	}
	return *station, nil
}

// GetStationByCode returns the station with the given code, case-insensitively
func (s *Store) GetStationByCode(code string) (models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	station, ok := s.stationsByCode[strings.ToUpper(code)]
	if !ok {
		return models.Station{}, fmt.Errorf("station code %s not found", code)
	}
	return *station, nil
}

// GetStationsByLocation returns up to limit stations ordered by distance from loc
func (s *Store) GetStationsByLocation(loc models.Location, limit int) []models.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranked := make([]models.Station, len(s.stations))
	copy(ranked, s.stations)

	// stable so equidistant stations keep corridor order
	sort.SliceStable(ranked, func(i, j int) bool {
		return distance(loc, ranked[i].Location()) < distance(loc, ranked[j].Location())
	})

	return ranked[:max(0, min(limit, len(ranked)))]
}

// GetTrain returns the train with the given id
func (s *Store) GetTrain(id string) (models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	train, ok := s.trains[strings.ToUpper(id)]
	if !ok {
		return models.Train{}, fmt.Errorf("train %s not found", id)
	}
	return *train, nil
}

// GetTrainsByStatus returns trains in the given status, ordered by id
func (s *Store) GetTrainsByStatus(status models.TrainStatus) []models.Train {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trains := s.trainsByStatus[status]
	result := make([]models.Train, len(trains))
	for i, train := range trains {
		result[i] = *train
	}
	return result
}

// GetLastUpdate returns the generation time of the loaded document
func (s *Store) GetLastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}

// distance is the great-circle distance in km between two coordinates
func distance(a, b models.Location) float64 {
	const earthRadiusKm = 6371

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
