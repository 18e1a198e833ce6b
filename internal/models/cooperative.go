package models

// Cooperative is a koperasi anchored to a subdistrict. The three region ids
// must form a consistent chain: the subdistrict belongs to the city, and the
// city belongs to the province.
type Cooperative struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ProvinceID    int    `json:"province_id"`
	CityID        int    `json:"city_id"`
	SubdistrictID int    `json:"subdistrict_id"`
}

// CooperativeInput carries the fields required to create a cooperative.
type CooperativeInput struct {
	Name          string `json:"name"`
	ProvinceID    int    `json:"province_id"`
	CityID        int    `json:"city_id"`
	SubdistrictID int    `json:"subdistrict_id"`
}

// CooperativeUpdate is a partial-field update. Nil fields are left unchanged.
type CooperativeUpdate struct {
	Name          *string `json:"name"`
	ProvinceID    *int    `json:"province_id"`
	CityID        *int    `json:"city_id"`
	SubdistrictID *int    `json:"subdistrict_id"`
}

// CooperativeScope narrows a listing to any combination of region ids.
// Zero values mean "no constraint".
type CooperativeScope struct {
	ProvinceID    int
	CityID        int
	SubdistrictID int
}
