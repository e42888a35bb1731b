package models

// Card is a credit card product with five detail tables.
type Card struct {
	Entity
	Name     *string `gorm:"size:512"`
	Sponsor  *string `gorm:"size:512"`
	Subtitle *string `gorm:"size:512"`
	Rating   *float64
	Image    *string `gorm:"size:512"`

	Basics       []CardBasic       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Benefits     []CardBenefit     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Discounts    []CardDiscount    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Fees         []CardFee         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Requirements []CardRequirement `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type CardBasic struct {
	Entity
	CardID            string `gorm:"size:36;not null;index"`
	FreeAirportLounge *int
	YearlyFee         *int64
	AverageRefund     *int64
	MaxRefund         *int64
	CardOrg           *string `gorm:"size:512"`
	Interest          *int
	IssueFee          *int64
	InterestFreeDay   *int
	PaymentEachMonth  *int64
}

type CardBenefit struct {
	Entity
	CardID      string  `gorm:"size:36;not null;index"`
	Label       *string `gorm:"size:512"`
	Description *string `gorm:"size:512"`
}

type CardDiscount struct {
	Entity
	CardID      string  `gorm:"size:36;not null;index"`
	Label       *string `gorm:"size:512"`
	Description *string `gorm:"size:512"`
}

type CardRequirement struct {
	Entity
	CardID             string `gorm:"size:36;not null;index"`
	Age                *int
	PersonalIdentifier *string `gorm:"size:512"`
	IncomeRequirement  *int64
	HomeIdentifier     *string `gorm:"size:512"`
}

type CardFee struct {
	Entity
	CardID             string  `gorm:"size:36;not null;index"`
	CashAdvance        *string `gorm:"size:512"`
	LatePayment        *string `gorm:"size:512"`
	ForeignTransaction *string `gorm:"size:512"`
}
