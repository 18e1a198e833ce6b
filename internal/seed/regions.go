package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/koperasindo/koperasi-api/internal/models"
)

// The region datasets are keyed by numeric region codes from Indonesia's
// administrative code scheme: 2-digit provinces, 4-digit cities, 6-digit
// subdistricts. They are imported once per process start to produce the
// initial in-memory record set.

//go:embed data/provinces.json
var provincesJSON []byte

//go:embed data/kabupaten.json
var citiesJSON []byte

//go:embed data/kecamatan.json
var subdistrictsJSON []byte

type provinceRow struct {
	ID   string `json:"id"`
	Nama string `json:"nama"`
}

type cityGroup struct {
	ID        int `json:"id"`
	Kabupaten []struct {
		ID   string `json:"id"`
		Nama string `json:"nama"`
	} `json:"kabupaten"`
}

type subdistrictGroup struct {
	ID        string `json:"id"`
	Kecamatan []struct {
		ID   string `json:"id"`
		Nama string `json:"nama"`
	} `json:"kecamatan"`
}

// Regions decodes the embedded region files into seed records.
func Regions() ([]models.Province, []models.City, []models.Subdistrict, error) {
	var provRows []provinceRow
	if err := json.Unmarshal(provincesJSON, &provRows); err != nil {
		return nil, nil, nil, fmt.Errorf("decode provinces: %w", err)
	}
	provinces := make([]models.Province, 0, len(provRows))
	for _, row := range provRows {
		id, err := strconv.Atoi(row.ID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("province code %q: %w", row.ID, err)
		}
		provinces = append(provinces, models.Province{ID: id, Name: row.Nama})
	}

	var cityGroups []cityGroup
	if err := json.Unmarshal(citiesJSON, &cityGroups); err != nil {
		return nil, nil, nil, fmt.Errorf("decode cities: %w", err)
	}
	var cities []models.City
	for _, group := range cityGroups {
		for _, row := range group.Kabupaten {
			id, err := strconv.Atoi(row.ID)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("city code %q: %w", row.ID, err)
			}
			cities = append(cities, models.City{ID: id, Name: row.Nama, ProvinceID: group.ID})
		}
	}

	var subGroups []subdistrictGroup
	if err := json.Unmarshal(subdistrictsJSON, &subGroups); err != nil {
		return nil, nil, nil, fmt.Errorf("decode subdistricts: %w", err)
	}
	var subdistricts []models.Subdistrict
	for _, group := range subGroups {
		cityID, err := strconv.Atoi(group.ID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("city code %q: %w", group.ID, err)
		}
		for _, row := range group.Kecamatan {
			id, err := strconv.Atoi(row.ID)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("subdistrict code %q: %w", row.ID, err)
			}
			subdistricts = append(subdistricts, models.Subdistrict{ID: id, Name: row.Nama, CityID: cityID})
		}
	}

	return provinces, cities, subdistricts, nil
}
