package generator

import (
	"github.com/jusunglee/kmrl-twin/internal/models"
)

// platformHeight is the same for every elevated station on the line
const platformHeight = 12.5

// corridorStations is the Phase 1 Aluva to Tripunithura alignment, ordered by chainage
var corridorStations = []models.Station{
	{ID: 1, Name: "Aluva", Code: "ALV", Chainage: 0.098, Lat: 10.1098, Lon: 76.3496, Type: models.StationTerminal},
	{ID: 2, Name: "Pulinchodu", Code: "PLN", Chainage: 1.827, Lat: 10.095120, Lon: 76.346661, Type: models.StationIntermediate},
	{ID: 3, Name: "Companypady", Code: "CMP", Chainage: 2.796, Lat: 10.087293, Lon: 76.342840, Type: models.StationIntermediate},
	{ID: 4, Name: "Ambattukavu", Code: "AMB", Chainage: 3.779, Lat: 10.079372, Lon: 76.339004, Type: models.StationIntermediate},
	{ID: 5, Name: "Muttom", Code: "MUT", Chainage: 4.716, Lat: 10.0727, Lon: 76.3337, Type: models.StationIntermediate},
	{ID: 6, Name: "Kalamassery", Code: "KLM", Chainage: 6.768, Lat: 10.058400, Lon: 76.321926, Type: models.StationInterchange},
	{ID: 7, Name: "Cochin University", Code: "CUSAT", Chainage: 8.147, Lat: 10.046879, Lon: 76.318377, Type: models.StationIntermediate},
	{ID: 8, Name: "Pathadipalam", Code: "PTH", Chainage: 9.394, Lat: 10.035948, Lon: 76.314371, Type: models.StationIntermediate},
	{ID: 9, Name: "Edapally", Code: "EDP", Chainage: 10.787, Lat: 10.0266556, Lon: 76.3092583, Type: models.StationIntermediate},
	{ID: 10, Name: "Changampuzha Park", Code: "CHP", Chainage: 12.023, Lat: 10.02, Lon: 76.30, Type: models.StationIntermediate},
	{ID: 11, Name: "Palarivattom", Code: "PLR", Chainage: 13.071, Lat: 10.015, Lon: 76.295, Type: models.StationIntermediate},
	{ID: 12, Name: "JLN Stadium", Code: "JLN", Chainage: 14.126, Lat: 10.01, Lon: 76.29, Type: models.StationIntermediate},
	{ID: 13, Name: "Kaloor", Code: "KLR", Chainage: 15.221, Lat: 10.005, Lon: 76.285, Type: models.StationIntermediate},
	{ID: 14, Name: "Town Hall", Code: "TNH", Chainage: 15.711, Lat: 10.0, Lon: 76.28, Type: models.StationIntermediate},
	{ID: 15, Name: "M.G Road", Code: "MGR", Chainage: 16.899, Lat: 9.995, Lon: 76.275, Type: models.StationIntermediate},
	{ID: 16, Name: "Maharaja's College", Code: "MJC", Chainage: 18.103, Lat: 9.99, Lon: 76.27, Type: models.StationIntermediate},
	{ID: 17, Name: "Ernakulam South", Code: "EKS", Chainage: 19.332, Lat: 9.985, Lon: 76.265, Type: models.StationIntermediate},
	{ID: 18, Name: "Kadavanthra", Code: "KDV", Chainage: 20.185, Lat: 9.98, Lon: 76.26, Type: models.StationIntermediate},
	{ID: 19, Name: "Elamkulam", Code: "ELM", Chainage: 21.341, Lat: 9.975, Lon: 76.255, Type: models.StationIntermediate},
	{ID: 20, Name: "Vyttila", Code: "VYT", Chainage: 22.447, Lat: 9.97, Lon: 76.25, Type: models.StationIntermediate},
	{ID: 21, Name: "Thykoodam", Code: "TKD", Chainage: 23.703, Lat: 9.965, Lon: 76.245, Type: models.StationIntermediate},
	{ID: 22, Name: "Petta", Code: "PET", Chainage: 24.822, Lat: 9.96, Lon: 76.24, Type: models.StationIntermediate},
	{ID: 23, Name: "Vadakkekotta", Code: "VDK", Chainage: 25.5, Lat: 9.955, Lon: 76.235, Type: models.StationIntermediate},
	{ID: 24, Name: "SN Junction", Code: "SNJ", Chainage: 26.5, Lat: 9.95, Lon: 76.23, Type: models.StationIntermediate},
	{ID: 25, Name: "Tripunithura", Code: "TRP", Chainage: 27.96, Lat: 9.945, Lon: 76.225, Type: models.StationTerminal},
}

// Stations returns a copy of the fixed corridor table
// Callers may mutate the result without affecting later runs
func Stations() []models.Station {
	stations := make([]models.Station, len(corridorStations))
	for i, s := range corridorStations {
		s.Height = platformHeight
		stations[i] = s
	}
	return stations
}
