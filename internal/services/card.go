package services

import (
	"context"

	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

const maxRating = 5.0

type cardStore interface {
	ListCards(ctx context.Context) ([]*models.Card, error)
	GetCard(ctx context.Context, id string) (*models.Card, error)
	CreateCard(ctx context.Context, card *models.Card) error
	UpdateCard(ctx context.Context, card *models.Card) error
	RetireCard(ctx context.Context, id string) error

	AddBasic(ctx context.Context, basic *models.CardBasic) error
	AddBenefit(ctx context.Context, benefit *models.CardBenefit) error
	AddDiscount(ctx context.Context, discount *models.CardDiscount) error
	AddFee(ctx context.Context, fee *models.CardFee) error
	AddRequirement(ctx context.Context, req *models.CardRequirement) error
	RetireBasic(ctx context.Context, cardID, id string) error
	RetireBenefit(ctx context.Context, cardID, id string) error
	RetireDiscount(ctx context.Context, cardID, id string) error
	RetireFee(ctx context.Context, cardID, id string) error
	RetireRequirement(ctx context.Context, cardID, id string) error
}

type cardService struct {
	store cardStore
}

func NewCardService(store cardStore) *cardService {
	return &cardService{store: store}
}

func validateCard(req dto.CardRequest) error {
	return firstErr(
		requireText("name", req.Name),
		inRange("rating", req.Rating, 0, maxRating),
	)
}

func validateCardBasic(req dto.CardBasicRequest) error {
	return firstErr(
		nonNegative("freeAirportLounge", req.FreeAirportLounge),
		nonNegative("yearlyFee", req.YearlyFee),
		nonNegative("averageRefund", req.AverageRefund),
		nonNegative("maxRefund", req.MaxRefund),
		nonNegative("interest", req.Interest),
		nonNegative("issueFee", req.IssueFee),
		nonNegative("interestFreeDay", req.InterestFreeDay),
		nonNegative("paymentEachMonth", req.PaymentEachMonth),
		ordered("averageRefund", "maxRefund", req.AverageRefund, req.MaxRefund),
	)
}

func (s *cardService) ListCards(ctx context.Context) ([]dto.CardResponse, error) {
	cards, err := s.store.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCardList(cards), nil
}

func (s *cardService) GetCard(ctx context.Context, id string) (dto.CardResponse, error) {
	card, err := s.store.GetCard(ctx, id)
	if err != nil {
		return dto.CardResponse{}, err
	}
	return dto.NewCardResponse(card), nil
}

func (s *cardService) CreateCard(ctx context.Context, req dto.CardRequest) (dto.CardResponse, error) {
	if err := validateCard(req); err != nil {
		return dto.CardResponse{}, err
	}
	card := &models.Card{}
	req.Apply(card)
	if err := s.store.CreateCard(ctx, card); err != nil {
		return dto.CardResponse{}, err
	}
	logger.FromContext(ctx).Info("card created", "card_id", card.ID)
	return dto.NewCardResponse(card), nil
}

func (s *cardService) UpdateCard(ctx context.Context, id string, req dto.CardRequest) (dto.CardResponse, error) {
	if err := validateCard(req); err != nil {
		return dto.CardResponse{}, err
	}
	card, err := s.store.GetCard(ctx, id)
	if err != nil {
		return dto.CardResponse{}, err
	}
	req.Apply(card)
	if err := s.store.UpdateCard(ctx, card); err != nil {
		return dto.CardResponse{}, err
	}
	return dto.NewCardResponse(card), nil
}

func (s *cardService) DeleteCard(ctx context.Context, id string) error {
	if err := s.store.RetireCard(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("card retired", "card_id", id)
	return nil
}

func (s *cardService) AddBasic(ctx context.Context, cardID string, req dto.CardBasicRequest) (dto.CardBasicResponse, error) {
	if err := validateCardBasic(req); err != nil {
		return dto.CardBasicResponse{}, err
	}
	row := req.Model(cardID)
	if err := s.store.AddBasic(ctx, row); err != nil {
		return dto.CardBasicResponse{}, err
	}
	return dto.NewCardBasicResponse(row), nil
}

func (s *cardService) AddBenefit(ctx context.Context, cardID string, req dto.LabelRequest) (dto.LabelResponse, error) {
	row := req.CardBenefit(cardID)
	if err := s.store.AddBenefit(ctx, row); err != nil {
		return dto.LabelResponse{}, err
	}
	return dto.NewCardBenefitResponse(row), nil
}

func (s *cardService) AddDiscount(ctx context.Context, cardID string, req dto.LabelRequest) (dto.LabelResponse, error) {
	row := req.CardDiscount(cardID)
	if err := s.store.AddDiscount(ctx, row); err != nil {
		return dto.LabelResponse{}, err
	}
	return dto.NewCardDiscountResponse(row), nil
}

func (s *cardService) AddFee(ctx context.Context, cardID string, req dto.CardFeeRequest) (dto.CardFeeResponse, error) {
	row := req.Model(cardID)
	if err := s.store.AddFee(ctx, row); err != nil {
		return dto.CardFeeResponse{}, err
	}
	return dto.NewCardFeeResponse(row), nil
}

func (s *cardService) AddRequirement(ctx context.Context, cardID string, req dto.CardRequirementRequest) (dto.CardRequirementResponse, error) {
	if err := firstErr(
		nonNegative("age", req.Age),
		nonNegative("incomeRequirement", req.IncomeRequirement),
	); err != nil {
		return dto.CardRequirementResponse{}, err
	}
	row := req.Model(cardID)
	if err := s.store.AddRequirement(ctx, row); err != nil {
		return dto.CardRequirementResponse{}, err
	}
	return dto.NewCardRequirementResponse(row), nil
}

func (s *cardService) RemoveBasic(ctx context.Context, cardID, id string) error {
	return s.store.RetireBasic(ctx, cardID, id)
}

func (s *cardService) RemoveBenefit(ctx context.Context, cardID, id string) error {
	return s.store.RetireBenefit(ctx, cardID, id)
}

func (s *cardService) RemoveDiscount(ctx context.Context, cardID, id string) error {
	return s.store.RetireDiscount(ctx, cardID, id)
}

func (s *cardService) RemoveFee(ctx context.Context, cardID, id string) error {
	return s.store.RetireFee(ctx, cardID, id)
}

func (s *cardService) RemoveRequirement(ctx context.Context, cardID, id string) error {
	return s.store.RetireRequirement(ctx, cardID, id)
}
