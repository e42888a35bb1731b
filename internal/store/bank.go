package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GregMSThompson/gatabank/internal/models"
)

type bankStore struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewBankStore(db *gorm.DB) *bankStore {
	return &bankStore{db: db, clock: time.Now}
}

func (s *bankStore) withDetails(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Fees", activeDetails).
		Preload("Requirements", activeDetails).
		Preload("Discounts", activeDetails)
}

func (s *bankStore) ListBanks(ctx context.Context) ([]*models.Bank, error) {
	var banks []*models.Bank
	err := s.withDetails(ctx).
		Where("status = ?", models.StatusActive).
		Order(listOrder).
		Find(&banks).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "bank")
	}
	return banks, nil
}

func (s *bankStore) GetBank(ctx context.Context, id string) (*models.Bank, error) {
	var bank models.Bank
	err := s.withDetails(ctx).
		Where("id = ? AND status = ?", id, models.StatusActive).
		Take(&bank).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "bank")
	}
	return &bank, nil
}

func (s *bankStore) CreateBank(ctx context.Context, bank *models.Bank) error {
	return insert(ctx, s.db, s.clock(), bank)
}

func (s *bankStore) UpdateBank(ctx context.Context, bank *models.Bank) error {
	return save(ctx, s.db, s.clock(), bank)
}

func (s *bankStore) RetireBank(ctx context.Context, id string) error {
	return retire[models.Bank](ctx, s.db, s.clock(), "id = ?", id)
}

func (s *bankStore) AddFee(ctx context.Context, fee *models.BankFee) error {
	return addChild[models.Bank](ctx, s.db, s.clock(), fee.BankID, fee)
}

func (s *bankStore) AddRequirement(ctx context.Context, req *models.BankRequirement) error {
	return addChild[models.Bank](ctx, s.db, s.clock(), req.BankID, req)
}

func (s *bankStore) AddDiscount(ctx context.Context, discount *models.BankDiscount) error {
	return addChild[models.Bank](ctx, s.db, s.clock(), discount.BankID, discount)
}

func (s *bankStore) RetireFee(ctx context.Context, bankID, id string) error {
	return retireChild[models.Bank, models.BankFee](ctx, s.db, s.clock(), "bank_id", bankID, id)
}

func (s *bankStore) RetireRequirement(ctx context.Context, bankID, id string) error {
	return retireChild[models.Bank, models.BankRequirement](ctx, s.db, s.clock(), "bank_id", bankID, id)
}

func (s *bankStore) RetireDiscount(ctx context.Context, bankID, id string) error {
	return retireChild[models.Bank, models.BankDiscount](ctx, s.db, s.clock(), "bank_id", bankID, id)
}
