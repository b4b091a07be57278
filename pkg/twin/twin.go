package twin

import (
	"github.com/jusunglee/kmrl-twin/internal/models"
)

// DefaultOutputPath is where the dataset lands when no path is given
const DefaultOutputPath = "kmrl_digital_twin.json"

// Source produces digital twin snapshots
// Abstracts the random generator so callers can substitute fixtures
type Source interface {
	Generate() *models.Document
}

// Config holds configuration for a generation run
type Config struct {
	OutputPath string
	Quiet      bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultOutputPath,
	}
}
