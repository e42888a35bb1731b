package dto

import "github.com/GregMSThompson/gatabank/internal/models"

type CityResponse struct {
	Meta
	Name string `json:"name"`
	Type string `json:"type"`
}

type DistrictResponse struct {
	Meta
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	CityID *string `json:"cityId"`
}

type VillageResponse struct {
	Meta
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	DistrictID *string `json:"districtId"`
}

func NewCityResponse(c *models.City) CityResponse {
	return CityResponse{Meta: metaOf(c.Entity), Name: c.Name, Type: c.Type}
}

func NewDistrictResponse(d *models.District) DistrictResponse {
	return DistrictResponse{Meta: metaOf(d.Entity), Name: d.Name, Type: d.Type, CityID: d.CityID}
}

func NewVillageResponse(v *models.Village) VillageResponse {
	return VillageResponse{Meta: metaOf(v.Entity), Name: v.Name, Type: v.Type, DistrictID: v.DistrictID}
}

func NewCityList(cities []*models.City) []CityResponse {
	return mapPtrs(cities, NewCityResponse)
}

func NewDistrictList(districts []*models.District) []DistrictResponse {
	return mapPtrs(districts, NewDistrictResponse)
}

func NewVillageList(villages []*models.Village) []VillageResponse {
	return mapPtrs(villages, NewVillageResponse)
}

// GeographySeed is the file format accepted by the admin seeder:
// cities with their districts, districts with their villages.
type GeographySeed struct {
	Cities []CitySeed `json:"cities"`
}

type CitySeed struct {
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Districts []DistrictSeed `json:"districts"`
}

type DistrictSeed struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Villages []VillageSeed `json:"villages"`
}

type VillageSeed struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
