package models

// The administrative hierarchy is a four-level chain: Province → City/Regency →
// Subdistrict → Cooperative. Identifiers follow Indonesia's administrative code
// scheme (2-digit province, 4-digit city, 6-digit subdistrict), which keeps
// them unique per entity type.

// Province is the root of the hierarchy. No parent.
type Province struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// City is a city/regency (kabupaten/kota) inside a province.
type City struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ProvinceID int    `json:"province_id"`
}

// Subdistrict is a kecamatan inside a city.
type Subdistrict struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	CityID int    `json:"city_id"`
}

// ProvinceUpdate is a partial-field update. Nil fields are left unchanged.
type ProvinceUpdate struct {
	Name *string `json:"name"`
}

// CityUpdate is a partial-field update. Nil fields are left unchanged.
type CityUpdate struct {
	Name       *string `json:"name"`
	ProvinceID *int    `json:"province_id"`
}

// SubdistrictUpdate is a partial-field update. Nil fields are left unchanged.
type SubdistrictUpdate struct {
	Name   *string `json:"name"`
	CityID *int    `json:"city_id"`
}
