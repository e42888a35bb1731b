package services

import (
	"context"

	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

type bankStore interface {
	ListBanks(ctx context.Context) ([]*models.Bank, error)
	GetBank(ctx context.Context, id string) (*models.Bank, error)
	CreateBank(ctx context.Context, bank *models.Bank) error
	UpdateBank(ctx context.Context, bank *models.Bank) error
	RetireBank(ctx context.Context, id string) error

	AddFee(ctx context.Context, fee *models.BankFee) error
	AddRequirement(ctx context.Context, req *models.BankRequirement) error
	AddDiscount(ctx context.Context, discount *models.BankDiscount) error
	RetireFee(ctx context.Context, bankID, id string) error
	RetireRequirement(ctx context.Context, bankID, id string) error
	RetireDiscount(ctx context.Context, bankID, id string) error
}

type bankService struct {
	store bankStore
}

func NewBankService(store bankStore) *bankService {
	return &bankService{store: store}
}

func validateBank(req dto.BankRequest) error {
	return firstErr(
		requireText("name", req.Name),
		nonNegative("minLoanAmount", req.MinLoanAmount),
		nonNegative("maxLoanAmount", req.MaxLoanAmount),
		nonNegative("minIncome", req.MinIncome),
		nonNegative("interestPercentage", req.InterestPercentage),
		ordered("minLoanAmount", "maxLoanAmount", req.MinLoanAmount, req.MaxLoanAmount),
	)
}

func (s *bankService) ListBanks(ctx context.Context) ([]dto.BankResponse, error) {
	banks, err := s.store.ListBanks(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBankList(banks), nil
}

func (s *bankService) GetBank(ctx context.Context, id string) (dto.BankResponse, error) {
	bank, err := s.store.GetBank(ctx, id)
	if err != nil {
		return dto.BankResponse{}, err
	}
	return dto.NewBankResponse(bank), nil
}

func (s *bankService) CreateBank(ctx context.Context, req dto.BankRequest) (dto.BankResponse, error) {
	if err := validateBank(req); err != nil {
		return dto.BankResponse{}, err
	}
	bank := &models.Bank{}
	req.Apply(bank)
	if err := s.store.CreateBank(ctx, bank); err != nil {
		return dto.BankResponse{}, err
	}
	logger.FromContext(ctx).Info("bank created", "bank_id", bank.ID)
	return dto.NewBankResponse(bank), nil
}

// UpdateBank replaces the bank's own fields. Detail rows are left as they are.
func (s *bankService) UpdateBank(ctx context.Context, id string, req dto.BankRequest) (dto.BankResponse, error) {
	if err := validateBank(req); err != nil {
		return dto.BankResponse{}, err
	}
	bank, err := s.store.GetBank(ctx, id)
	if err != nil {
		return dto.BankResponse{}, err
	}
	req.Apply(bank)
	if err := s.store.UpdateBank(ctx, bank); err != nil {
		return dto.BankResponse{}, err
	}
	return dto.NewBankResponse(bank), nil
}

func (s *bankService) DeleteBank(ctx context.Context, id string) error {
	if err := s.store.RetireBank(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("bank retired", "bank_id", id)
	return nil
}

func (s *bankService) AddFee(ctx context.Context, bankID string, req dto.BankFeeRequest) (dto.BankFeeResponse, error) {
	fee := req.Model(bankID)
	if err := s.store.AddFee(ctx, fee); err != nil {
		return dto.BankFeeResponse{}, err
	}
	return dto.NewBankFeeResponse(fee), nil
}

func (s *bankService) AddRequirement(ctx context.Context, bankID string, req dto.BankRequirementRequest) (dto.BankRequirementResponse, error) {
	row := req.Model(bankID)
	if err := s.store.AddRequirement(ctx, row); err != nil {
		return dto.BankRequirementResponse{}, err
	}
	return dto.NewBankRequirementResponse(row), nil
}

func (s *bankService) AddDiscount(ctx context.Context, bankID string, req dto.LabelRequest) (dto.LabelResponse, error) {
	row := req.BankDiscount(bankID)
	if err := s.store.AddDiscount(ctx, row); err != nil {
		return dto.LabelResponse{}, err
	}
	return dto.NewBankDiscountResponse(row), nil
}

func (s *bankService) RemoveFee(ctx context.Context, bankID, id string) error {
	return s.store.RetireFee(ctx, bankID, id)
}

func (s *bankService) RemoveRequirement(ctx context.Context, bankID, id string) error {
	return s.store.RetireRequirement(ctx, bankID, id)
}

func (s *bankService) RemoveDiscount(ctx context.Context, bankID, id string) error {
	return s.store.RetireDiscount(ctx, bankID, id)
}
