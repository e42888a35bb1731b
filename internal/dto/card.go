package dto

import "github.com/GregMSThompson/gatabank/internal/models"

// --- Request types ---

type CardRequest struct {
	Name     *string  `json:"name"`
	Sponsor  *string  `json:"sponsor"`
	Subtitle *string  `json:"subtitle"`
	Rating   *float64 `json:"rating"`
	Image    *string  `json:"image"`
}

// Apply replaces every mutable field of c.
func (r CardRequest) Apply(c *models.Card) {
	c.Name = r.Name
	c.Sponsor = r.Sponsor
	c.Subtitle = r.Subtitle
	c.Rating = r.Rating
	c.Image = r.Image
}

type CardBasicRequest struct {
	FreeAirportLounge *int    `json:"freeAirportLounge"`
	YearlyFee         *int64  `json:"yearlyFee"`
	AverageRefund     *int64  `json:"averageRefund"`
	MaxRefund         *int64  `json:"maxRefund"`
	CardOrg           *string `json:"cardOrg"`
	Interest          *int    `json:"interest"`
	IssueFee          *int64  `json:"issueFee"`
	InterestFreeDay   *int    `json:"interestFreeDay"`
	PaymentEachMonth  *int64  `json:"paymentEachMonth"`
}

func (r CardBasicRequest) Model(cardID string) *models.CardBasic {
	return &models.CardBasic{
		CardID:            cardID,
		FreeAirportLounge: r.FreeAirportLounge,
		YearlyFee:         r.YearlyFee,
		AverageRefund:     r.AverageRefund,
		MaxRefund:         r.MaxRefund,
		CardOrg:           r.CardOrg,
		Interest:          r.Interest,
		IssueFee:          r.IssueFee,
		InterestFreeDay:   r.InterestFreeDay,
		PaymentEachMonth:  r.PaymentEachMonth,
	}
}

type CardRequirementRequest struct {
	Age                *int    `json:"age"`
	PersonalIdentifier *string `json:"personalIdentifier"`
	IncomeRequirement  *int64  `json:"incomeRequirement"`
	HomeIdentifier     *string `json:"homeIdentifier"`
}

func (r CardRequirementRequest) Model(cardID string) *models.CardRequirement {
	return &models.CardRequirement{
		CardID:             cardID,
		Age:                r.Age,
		PersonalIdentifier: r.PersonalIdentifier,
		IncomeRequirement:  r.IncomeRequirement,
		HomeIdentifier:     r.HomeIdentifier,
	}
}

type CardFeeRequest struct {
	CashAdvance        *string `json:"cashAdvance"`
	LatePayment        *string `json:"latePayment"`
	ForeignTransaction *string `json:"foreignTransaction"`
}

func (r CardFeeRequest) Model(cardID string) *models.CardFee {
	return &models.CardFee{
		CardID:             cardID,
		CashAdvance:        r.CashAdvance,
		LatePayment:        r.LatePayment,
		ForeignTransaction: r.ForeignTransaction,
	}
}

func (r LabelRequest) CardBenefit(cardID string) *models.CardBenefit {
	return &models.CardBenefit{CardID: cardID, Label: r.Label, Description: r.Description}
}

func (r LabelRequest) CardDiscount(cardID string) *models.CardDiscount {
	return &models.CardDiscount{CardID: cardID, Label: r.Label, Description: r.Description}
}

// --- Response types ---

type CardResponse struct {
	Meta
	Name     *string  `json:"name"`
	Sponsor  *string  `json:"sponsor"`
	Subtitle *string  `json:"subtitle"`
	Rating   *float64 `json:"rating"`
	Image    *string  `json:"image"`

	CardBasics       []CardBasicResponse       `json:"cardBasics"`
	CardBenefits     []LabelResponse           `json:"cardBenefits"`
	CardDiscounts    []LabelResponse           `json:"cardDiscounts"`
	CardFees         []CardFeeResponse         `json:"cardFees"`
	CardRequirements []CardRequirementResponse `json:"cardRequirements"`
}

type CardBasicResponse struct {
	ID string `json:"id"`
	CardBasicRequest
}

type CardRequirementResponse struct {
	ID string `json:"id"`
	CardRequirementRequest
}

type CardFeeResponse struct {
	ID string `json:"id"`
	CardFeeRequest
}

func NewCardBasicResponse(b *models.CardBasic) CardBasicResponse {
	return CardBasicResponse{
		ID: b.ID,
		CardBasicRequest: CardBasicRequest{
			FreeAirportLounge: b.FreeAirportLounge,
			YearlyFee:         b.YearlyFee,
			AverageRefund:     b.AverageRefund,
			MaxRefund:         b.MaxRefund,
			CardOrg:           b.CardOrg,
			Interest:          b.Interest,
			IssueFee:          b.IssueFee,
			InterestFreeDay:   b.InterestFreeDay,
			PaymentEachMonth:  b.PaymentEachMonth,
		},
	}
}

func NewCardRequirementResponse(r *models.CardRequirement) CardRequirementResponse {
	return CardRequirementResponse{
		ID: r.ID,
		CardRequirementRequest: CardRequirementRequest{
			Age:                r.Age,
			PersonalIdentifier: r.PersonalIdentifier,
			IncomeRequirement:  r.IncomeRequirement,
			HomeIdentifier:     r.HomeIdentifier,
		},
	}
}

func NewCardFeeResponse(f *models.CardFee) CardFeeResponse {
	return CardFeeResponse{
		ID: f.ID,
		CardFeeRequest: CardFeeRequest{
			CashAdvance:        f.CashAdvance,
			LatePayment:        f.LatePayment,
			ForeignTransaction: f.ForeignTransaction,
		},
	}
}

func NewCardBenefitResponse(b *models.CardBenefit) LabelResponse {
	return LabelResponse{ID: b.ID, Label: b.Label, Description: b.Description}
}

func NewCardDiscountResponse(d *models.CardDiscount) LabelResponse {
	return LabelResponse{ID: d.ID, Label: d.Label, Description: d.Description}
}

func NewCardResponse(c *models.Card) CardResponse {
	return CardResponse{
		Meta:             metaOf(c.Entity),
		Name:             c.Name,
		Sponsor:          c.Sponsor,
		Subtitle:         c.Subtitle,
		Rating:           c.Rating,
		Image:            c.Image,
		CardBasics:       mapAll(c.Basics, NewCardBasicResponse),
		CardBenefits:     mapAll(c.Benefits, NewCardBenefitResponse),
		CardDiscounts:    mapAll(c.Discounts, NewCardDiscountResponse),
		CardFees:         mapAll(c.Fees, NewCardFeeResponse),
		CardRequirements: mapAll(c.Requirements, NewCardRequirementResponse),
	}
}

func NewCardList(cards []*models.Card) []CardResponse {
	return mapPtrs(cards, NewCardResponse)
}
