package dto

import "github.com/GregMSThompson/gatabank/internal/models"

// --- Request types ---

type BankRequest struct {
	Name               *string `json:"name"`
	Image              *string `json:"image"`
	MinLoanAmount      *int64  `json:"minLoanAmount"`
	MaxLoanAmount      *int64  `json:"maxLoanAmount"`
	InterestPercentage *int    `json:"interestPercentage"`
	InterestType       *string `json:"interestType"`
	MinIncome          *int64  `json:"minIncome"`
	MinLoanTerm        *string `json:"minLoanTerm"`
	MaxLoanTerm        *string `json:"maxLoanTerm"`
	VerifiedIn         *string `json:"verifiedIn"`
	InterestCalMethod  *string `json:"interestCalMethod"`
}

// Apply replaces every mutable field of b.
func (r BankRequest) Apply(b *models.Bank) {
	b.Name = r.Name
	b.Image = r.Image
	b.MinLoanAmount = r.MinLoanAmount
	b.MaxLoanAmount = r.MaxLoanAmount
	b.InterestPercentage = r.InterestPercentage
	b.InterestType = r.InterestType
	b.MinIncome = r.MinIncome
	b.MinLoanTerm = r.MinLoanTerm
	b.MaxLoanTerm = r.MaxLoanTerm
	b.VerifiedIn = r.VerifiedIn
	b.InterestCalMethod = r.InterestCalMethod
}

type BankFeeRequest struct {
	PenaltyFee        *string `json:"penaltyFee"`
	PenaltyInterest   *string `json:"penaltyInterest"`
	EarlierPaymentFee *string `json:"earlierPaymentFee"`
}

func (r BankFeeRequest) Model(bankID string) *models.BankFee {
	return &models.BankFee{
		BankID:            bankID,
		PenaltyFee:        r.PenaltyFee,
		PenaltyInterest:   r.PenaltyInterest,
		EarlierPaymentFee: r.EarlierPaymentFee,
	}
}

type BankRequirementRequest struct {
	Age                *string `json:"age"`
	PersonalIdentifier *string `json:"personalIdentifier"`
	IncomeIdentifier   *string `json:"incomeIdentifier"`
	HomeIdentifier     *string `json:"homeIdentifier"`
	Other              *string `json:"other"`
}

func (r BankRequirementRequest) Model(bankID string) *models.BankRequirement {
	return &models.BankRequirement{
		BankID:             bankID,
		Age:                r.Age,
		PersonalIdentifier: r.PersonalIdentifier,
		IncomeIdentifier:   r.IncomeIdentifier,
		HomeIdentifier:     r.HomeIdentifier,
		Other:              r.Other,
	}
}

// LabelRequest is shared by the label/description detail tables.
type LabelRequest struct {
	Label       *string `json:"label"`
	Description *string `json:"description"`
}

func (r LabelRequest) BankDiscount(bankID string) *models.BankDiscount {
	return &models.BankDiscount{BankID: bankID, Label: r.Label, Description: r.Description}
}

// --- Response types ---

type BankResponse struct {
	Meta
	Name               *string `json:"name"`
	Image              *string `json:"image"`
	MinLoanAmount      *int64  `json:"minLoanAmount"`
	MaxLoanAmount      *int64  `json:"maxLoanAmount"`
	InterestPercentage *int    `json:"interestPercentage"`
	InterestType       *string `json:"interestType"`
	MinIncome          *int64  `json:"minIncome"`
	MinLoanTerm        *string `json:"minLoanTerm"`
	MaxLoanTerm        *string `json:"maxLoanTerm"`
	VerifiedIn         *string `json:"verifiedIn"`
	InterestCalMethod  *string `json:"interestCalMethod"`

	BankFees         []BankFeeResponse         `json:"bankFees"`
	BankRequirements []BankRequirementResponse `json:"bankRequirements"`
	BankDiscounts    []LabelResponse           `json:"bankDiscounts"`
}

// Detail rows carry their id and their own fields only.

type BankFeeResponse struct {
	ID                string  `json:"id"`
	PenaltyFee        *string `json:"penaltyFee"`
	PenaltyInterest   *string `json:"penaltyInterest"`
	EarlierPaymentFee *string `json:"earlierPaymentFee"`
}

type BankRequirementResponse struct {
	ID                 string  `json:"id"`
	Age                *string `json:"age"`
	PersonalIdentifier *string `json:"personalIdentifier"`
	IncomeIdentifier   *string `json:"incomeIdentifier"`
	HomeIdentifier     *string `json:"homeIdentifier"`
	Other              *string `json:"other"`
}

type LabelResponse struct {
	ID          string  `json:"id"`
	Label       *string `json:"label"`
	Description *string `json:"description"`
}

func NewBankFeeResponse(f *models.BankFee) BankFeeResponse {
	return BankFeeResponse{
		ID:                f.ID,
		PenaltyFee:        f.PenaltyFee,
		PenaltyInterest:   f.PenaltyInterest,
		EarlierPaymentFee: f.EarlierPaymentFee,
	}
}

func NewBankRequirementResponse(r *models.BankRequirement) BankRequirementResponse {
	return BankRequirementResponse{
		ID:                 r.ID,
		Age:                r.Age,
		PersonalIdentifier: r.PersonalIdentifier,
		IncomeIdentifier:   r.IncomeIdentifier,
		HomeIdentifier:     r.HomeIdentifier,
		Other:              r.Other,
	}
}

func NewBankDiscountResponse(d *models.BankDiscount) LabelResponse {
	return LabelResponse{ID: d.ID, Label: d.Label, Description: d.Description}
}

func NewBankResponse(b *models.Bank) BankResponse {
	return BankResponse{
		Meta:               metaOf(b.Entity),
		Name:               b.Name,
		Image:              b.Image,
		MinLoanAmount:      b.MinLoanAmount,
		MaxLoanAmount:      b.MaxLoanAmount,
		InterestPercentage: b.InterestPercentage,
		InterestType:       b.InterestType,
		MinIncome:          b.MinIncome,
		MinLoanTerm:        b.MinLoanTerm,
		MaxLoanTerm:        b.MaxLoanTerm,
		VerifiedIn:         b.VerifiedIn,
		InterestCalMethod:  b.InterestCalMethod,
		BankFees:           mapAll(b.Fees, NewBankFeeResponse),
		BankRequirements:   mapAll(b.Requirements, NewBankRequirementResponse),
		BankDiscounts:      mapAll(b.Discounts, NewBankDiscountResponse),
	}
}

func NewBankList(banks []*models.Bank) []BankResponse {
	return mapPtrs(banks, NewBankResponse)
}
