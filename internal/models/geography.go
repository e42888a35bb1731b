package models

// City -> District -> Village. Removing a parent row removes its subtree.

type City struct {
	Entity
	Name string `gorm:"size:300;not null"`
	Type string `gorm:"size:300;not null"`
}

type District struct {
	Entity
	Name   string  `gorm:"size:300;not null"`
	Type   string  `gorm:"size:300;not null"`
	CityID *string `gorm:"size:36;index"`
	City   *City   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type Village struct {
	Entity
	Name       string    `gorm:"size:300;not null"`
	Type       string    `gorm:"size:300;not null"`
	DistrictID *string   `gorm:"size:36;index"`
	District   *District `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
