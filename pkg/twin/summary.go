package twin

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/jusunglee/kmrl-twin/internal/models"
	"github.com/jusunglee/kmrl-twin/internal/store"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// sampleTrains is how many leading trains the summary lists
const sampleTrains = 3

// PrintSummary writes the human-readable run report. The format is not a stable contract.
func PrintSummary(w io.Writer, doc *models.Document, s *store.Store, path string) error {
	p := message.NewPrinter(language.English)
	status := doc.Operations.CurrentStatus
	stats := doc.RollingStock.FleetStats

	var buf bytes.Buffer
	p.Fprintln(&buf, "KMRL Digital Twin Data Generated Successfully!")
	p.Fprintln(&buf, strings.Repeat("=", 50))
	p.Fprintf(&buf, "Total Stations: %d\n", len(doc.Infrastructure.Stations))
	p.Fprintf(&buf, "Total Trains: %d\n", len(doc.RollingStock.Trains))
	p.Fprintf(&buf, "Active Trains: %d\n", status.ActiveTrains)
	p.Fprintf(&buf, "Fleet Availability: %.1f%%\n", stats.AvailabilityPercent())
	p.Fprintf(&buf, "Current Passenger Load: %d\n", status.PassengerLoad)
	p.Fprintf(&buf, "System Punctuality: %.1f%%\n", status.Punctuality)
	p.Fprintf(&buf, "Maintenance Items Scheduled: %d\n", len(doc.Operations.MaintenanceSchedule))

	p.Fprintln(&buf, "\nFleet by Status:")
	for _, ts := range models.TrainStatuses {
		p.Fprintf(&buf, "  %s: %d\n", ts, len(s.GetTrainsByStatus(ts)))
	}

	for _, depot := range doc.Infrastructure.Depots {
		if nearest := s.GetStationsByLocation(depot.Location, 1); len(nearest) > 0 {
			p.Fprintf(&buf, "Depot: %s (nearest station %s, %s)\n", depot.Name, nearest[0].Name, nearest[0].Code)
		} else {
			p.Fprintf(&buf, "Depot: %s\n", depot.Name)
		}
	}

	p.Fprintln(&buf, "\nSample Train Status:")
	trains := doc.RollingStock.Trains
	for _, train := range trains[:min(sampleTrains, len(trains))] {
		at := p.Sprintf("Station %d", train.CurrentStation)
		if station, err := s.GetStation(train.CurrentStation); err == nil {
			at = p.Sprintf("Station %d (%s)", station.ID, station.Name)
		}
		p.Fprintf(&buf, "  %s: %s at %s (%d kmph)\n", train.ID, train.Status, at, train.Speed)
	}

	p.Fprintf(&buf, "\nSnapshot Time: %s\n", s.GetLastUpdate().Format(time.RFC3339))
	p.Fprintf(&buf, "Digital twin data saved to: %s\n", path)

	_, err := w.Write(buf.Bytes())
	return err
}
