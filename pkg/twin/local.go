package twin

import (
	"fmt"
	"io"
	"time"

	"github.com/jusunglee/kmrl-twin/internal/generator"
	"github.com/jusunglee/kmrl-twin/internal/models"
	"github.com/jusunglee/kmrl-twin/internal/store"
	"go.uber.org/zap"
)

// LocalTwin runs generation against the local filesystem
// Keeps the last snapshot indexed so lookups match what was written
type LocalTwin struct {
	config Config
	source Source
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewLocal creates a runner backed by an entropy-seeded generator
func NewLocal(config Config, logger *zap.SugaredLogger) *LocalTwin {
	return NewLocalWithSource(config, generator.New(), logger)
}

// NewLocalWithSource creates a runner backed by the given source
func NewLocalWithSource(config Config, source Source, logger *zap.SugaredLogger) *LocalTwin {
	if config.OutputPath == "" {
		config.OutputPath = DefaultOutputPath
	}
	return &LocalTwin{
		config: config,
		source: source,
		store:  store.NewStore(),
		logger: logger,
	}
}

// Run generates one snapshot, writes it to the configured path and prints the summary to w
func (t *LocalTwin) Run(w io.Writer) (*models.Document, error) {
	t.logger.Debugw("Generating dataset", "output", t.config.OutputPath)

	doc := t.source.Generate()
	t.store.Load(doc)

	n, err := WriteFile(t.config.OutputPath, doc)
	if err != nil {
		return nil, err
	}
	t.logger.Infow("Dataset written",
		"path", t.config.OutputPath,
		"bytes", n,
		"snapshot", doc.Meta.SnapshotID,
	)

	if t.config.Quiet {
		return doc, nil
	}
	if err := PrintSummary(w, doc, t.store, t.config.OutputPath); err != nil {
		return doc, fmt.Errorf("print summary: %w", err)
	}
	return doc, nil
}

// Station looks up a station in the last generated snapshot
func (t *LocalTwin) Station(id int) (models.Station, error) {
	return t.store.GetStation(id)
}

// Train looks up a train in the last generated snapshot
func (t *LocalTwin) Train(id string) (models.Train, error) {
	return t.store.GetTrain(id)
}

// StationByCode looks up a station by its short code
func (t *LocalTwin) StationByCode(code string) (models.Station, error) {
	return t.store.GetStationByCode(code)
}

// NearestStations returns up to limit stations ordered by distance from loc
func (t *LocalTwin) NearestStations(loc models.Location, limit int) []models.Station {
	return t.store.GetStationsByLocation(loc, limit)
}

// TrainsByStatus returns the trains in status from the last snapshot
func (t *LocalTwin) TrainsByStatus(status models.TrainStatus) []models.Train {
	return t.store.GetTrainsByStatus(status)
}

// LastUpdate returns the generation time of the last snapshot
func (t *LocalTwin) LastUpdate() time.Time {
	return t.store.GetLastUpdate()
}

