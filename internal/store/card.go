package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GregMSThompson/gatabank/internal/models"
)

type cardStore struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewCardStore(db *gorm.DB) *cardStore {
	return &cardStore{db: db, clock: time.Now}
}

func (s *cardStore) withDetails(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Basics", activeDetails).
		Preload("Benefits", activeDetails).
		Preload("Discounts", activeDetails).
		Preload("Fees", activeDetails).
		Preload("Requirements", activeDetails)
}

func (s *cardStore) ListCards(ctx context.Context) ([]*models.Card, error) {
	var cards []*models.Card
	err := s.withDetails(ctx).
		Where("status = ?", models.StatusActive).
		Order(listOrder).
		Find(&cards).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "card")
	}
	return cards, nil
}

func (s *cardStore) GetCard(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	err := s.withDetails(ctx).
		Where("id = ? AND status = ?", id, models.StatusActive).
		Take(&card).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "card")
	}
	return &card, nil
}

func (s *cardStore) CreateCard(ctx context.Context, card *models.Card) error {
	return insert(ctx, s.db, s.clock(), card)
}

func (s *cardStore) UpdateCard(ctx context.Context, card *models.Card) error {
	return save(ctx, s.db, s.clock(), card)
}

func (s *cardStore) RetireCard(ctx context.Context, id string) error {
	return retire[models.Card](ctx, s.db, s.clock(), "id = ?", id)
}

func (s *cardStore) AddBasic(ctx context.Context, basic *models.CardBasic) error {
	return addChild[models.Card](ctx, s.db, s.clock(), basic.CardID, basic)
}

func (s *cardStore) AddBenefit(ctx context.Context, benefit *models.CardBenefit) error {
	return addChild[models.Card](ctx, s.db, s.clock(), benefit.CardID, benefit)
}

func (s *cardStore) AddDiscount(ctx context.Context, discount *models.CardDiscount) error {
	return addChild[models.Card](ctx, s.db, s.clock(), discount.CardID, discount)
}

func (s *cardStore) AddFee(ctx context.Context, fee *models.CardFee) error {
	return addChild[models.Card](ctx, s.db, s.clock(), fee.CardID, fee)
}

func (s *cardStore) AddRequirement(ctx context.Context, req *models.CardRequirement) error {
	return addChild[models.Card](ctx, s.db, s.clock(), req.CardID, req)
}

func (s *cardStore) RetireBasic(ctx context.Context, cardID, id string) error {
	return retireChild[models.Card, models.CardBasic](ctx, s.db, s.clock(), "card_id", cardID, id)
}

func (s *cardStore) RetireBenefit(ctx context.Context, cardID, id string) error {
	return retireChild[models.Card, models.CardBenefit](ctx, s.db, s.clock(), "card_id", cardID, id)
}

func (s *cardStore) RetireDiscount(ctx context.Context, cardID, id string) error {
	return retireChild[models.Card, models.CardDiscount](ctx, s.db, s.clock(), "card_id", cardID, id)
}

func (s *cardStore) RetireFee(ctx context.Context, cardID, id string) error {
	return retireChild[models.Card, models.CardFee](ctx, s.db, s.clock(), "card_id", cardID, id)
}

func (s *cardStore) RetireRequirement(ctx context.Context, cardID, id string) error {
	return retireChild[models.Card, models.CardRequirement](ctx, s.db, s.clock(), "card_id", cardID, id)
}
