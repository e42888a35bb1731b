package services

import (
	"context"
	"errors"
	"testing"

	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/pkg/helpers"
)

type stubBankStore struct {
	bank       *models.Bank
	getErr     error
	createErr  error
	created    *models.Bank
	updated    *models.Bank
	retiredID  string
	retireErr  error
	addedFee   *models.BankFee
	addErr     error
	removedFee [2]string
}

func (s *stubBankStore) ListBanks(_ context.Context) ([]*models.Bank, error) {
	if s.bank == nil {
		return nil, nil
	}
	return []*models.Bank{s.bank}, nil
}

func (s *stubBankStore) GetBank(_ context.Context, _ string) (*models.Bank, error) {
	return s.bank, s.getErr
}

func (s *stubBankStore) CreateBank(_ context.Context, bank *models.Bank) error {
	bank.ID = "bank-1"
	s.created = bank
	return s.createErr
}

func (s *stubBankStore) UpdateBank(_ context.Context, bank *models.Bank) error {
	s.updated = bank
	return nil
}

func (s *stubBankStore) RetireBank(_ context.Context, id string) error {
	s.retiredID = id
	return s.retireErr
}

func (s *stubBankStore) AddFee(_ context.Context, fee *models.BankFee) error {
	s.addedFee = fee
	return s.addErr
}

func (s *stubBankStore) AddRequirement(_ context.Context, _ *models.BankRequirement) error {
	return s.addErr
}

func (s *stubBankStore) AddDiscount(_ context.Context, _ *models.BankDiscount) error {
	return s.addErr
}

func (s *stubBankStore) RetireFee(_ context.Context, bankID, id string) error {
	s.removedFee = [2]string{bankID, id}
	return nil
}

func (s *stubBankStore) RetireRequirement(_ context.Context, _, _ string) error { return nil }
func (s *stubBankStore) RetireDiscount(_ context.Context, _, _ string) error    { return nil }

func TestCreateBank_OK(t *testing.T) {
	store := &stubBankStore{}
	svc := NewBankService(store)

	resp, err := svc.CreateBank(helpers.TestCtx(), dto.BankRequest{
		Name:          helpers.Ptr("Golomt"),
		MinLoanAmount: helpers.Ptr(int64(100)),
		MaxLoanAmount: helpers.Ptr(int64(1000)),
	})
	if err != nil {
		t.Fatalf("CreateBank returned error: %v", err)
	}
	if store.created == nil || helpers.Value(store.created.Name) != "Golomt" {
		t.Fatalf("store received %+v", store.created)
	}
	if resp.ID != "bank-1" {
		t.Fatalf("response id = %q, want bank-1", resp.ID)
	}
	if resp.BankFees == nil || len(resp.BankFees) != 0 {
		t.Fatalf("bankFees = %#v, want empty array", resp.BankFees)
	}
}

func TestCreateBank_InvalidInput(t *testing.T) {
	cases := map[string]dto.BankRequest{
		"missing name":      {},
		"blank name":        {Name: helpers.Ptr("  ")},
		"inverted range":    {Name: helpers.Ptr("x"), MinLoanAmount: helpers.Ptr(int64(10)), MaxLoanAmount: helpers.Ptr(int64(5))},
		"negative income":   {Name: helpers.Ptr("x"), MinIncome: helpers.Ptr(int64(-1))},
		"negative interest": {Name: helpers.Ptr("x"), InterestPercentage: helpers.Ptr(-3)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			store := &stubBankStore{}
			_, err := NewBankService(store).CreateBank(helpers.TestCtx(), req)
			var ve *errs.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if store.created != nil {
				t.Fatalf("store should not be called")
			}
		})
	}
}

func TestUpdateBank_ReplacesFields(t *testing.T) {
	existing := &models.Bank{
		Name:  helpers.Ptr("Old"),
		Image: helpers.Ptr("old.png"),
		Fees:  []models.BankFee{{PenaltyFee: helpers.Ptr("1%")}},
	}
	existing.ID = "bank-9"
	store := &stubBankStore{bank: existing}

	resp, err := NewBankService(store).UpdateBank(helpers.TestCtx(), "bank-9", dto.BankRequest{Name: helpers.Ptr("New")})
	if err != nil {
		t.Fatalf("UpdateBank returned error: %v", err)
	}
	if store.updated != existing {
		t.Fatalf("store did not receive the loaded bank")
	}
	if existing.Image != nil {
		t.Fatalf("image should be cleared by a full replace, got %v", *existing.Image)
	}
	if helpers.Value(resp.Name) != "New" || len(resp.BankFees) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUpdateBank_NotFound(t *testing.T) {
	store := &stubBankStore{getErr: errs.NewNotFoundError("bank not found")}
	_, err := NewBankService(store).UpdateBank(helpers.TestCtx(), "nope", dto.BankRequest{Name: helpers.Ptr("x")})
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestBankDetails_AddRemove(t *testing.T) {
	store := &stubBankStore{}
	svc := NewBankService(store)
	ctx := helpers.TestCtx()

	resp, err := svc.AddFee(ctx, "bank-1", dto.BankFeeRequest{PenaltyFee: helpers.Ptr("2%")})
	if err != nil {
		t.Fatalf("AddFee returned error: %v", err)
	}
	if store.addedFee.BankID != "bank-1" || helpers.Value(resp.PenaltyFee) != "2%" {
		t.Fatalf("unexpected fee: %+v", store.addedFee)
	}

	if err := svc.RemoveFee(ctx, "bank-1", "fee-1"); err != nil {
		t.Fatalf("RemoveFee returned error: %v", err)
	}
	if store.removedFee != [2]string{"bank-1", "fee-1"} {
		t.Fatalf("removed %v", store.removedFee)
	}

	if err := svc.DeleteBank(ctx, "bank-1"); err != nil || store.retiredID != "bank-1" {
		t.Fatalf("DeleteBank err=%v retired=%q", err, store.retiredID)
	}
}
