package models

// Bank is a loan product offered by a bank together with its detail tables.
type Bank struct {
	Entity
	Name               *string `gorm:"size:512"`
	Image              *string `gorm:"size:512"`
	MinLoanAmount      *int64
	MaxLoanAmount      *int64
	InterestPercentage *int
	InterestType       *string `gorm:"size:512"`
	MinIncome          *int64
	MinLoanTerm        *string `gorm:"size:512"`
	MaxLoanTerm        *string `gorm:"size:512"`
	VerifiedIn         *string `gorm:"size:512"`
	InterestCalMethod  *string `gorm:"size:512"`

	Fees         []BankFee         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Requirements []BankRequirement `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Discounts    []BankDiscount    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type BankFee struct {
	Entity
	BankID            string  `gorm:"size:36;not null;index"`
	PenaltyFee        *string `gorm:"size:512"`
	PenaltyInterest   *string `gorm:"size:512"`
	EarlierPaymentFee *string `gorm:"size:512"`
}

type BankRequirement struct {
	Entity
	BankID             string  `gorm:"size:36;not null;index"`
	Age                *string `gorm:"size:512"`
	PersonalIdentifier *string `gorm:"size:512"`
	IncomeIdentifier   *string `gorm:"size:512"`
	HomeIdentifier     *string `gorm:"size:512"`
	Other              *string `gorm:"size:512"`
}

type BankDiscount struct {
	Entity
	BankID      string  `gorm:"size:36;not null;index"`
	Label       *string `gorm:"size:512"`
	Description *string `gorm:"size:512"`
}
