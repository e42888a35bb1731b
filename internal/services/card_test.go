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

type stubCardStore struct {
	created    *models.Card
	addedBasic *models.CardBasic
	addErr     error
}

func (s *stubCardStore) ListCards(_ context.Context) ([]*models.Card, error) { return nil, nil }
func (s *stubCardStore) GetCard(_ context.Context, _ string) (*models.Card, error) {
	return nil, errs.NewNotFoundError("card not found")
}
func (s *stubCardStore) CreateCard(_ context.Context, card *models.Card) error {
	s.created = card
	return nil
}
func (s *stubCardStore) UpdateCard(_ context.Context, _ *models.Card) error { return nil }
func (s *stubCardStore) RetireCard(_ context.Context, _ string) error       { return nil }
func (s *stubCardStore) AddBasic(_ context.Context, basic *models.CardBasic) error {
	s.addedBasic = basic
	return s.addErr
}
func (s *stubCardStore) AddBenefit(_ context.Context, _ *models.CardBenefit) error { return s.addErr }
func (s *stubCardStore) AddDiscount(_ context.Context, _ *models.CardDiscount) error {
	return s.addErr
}
func (s *stubCardStore) AddFee(_ context.Context, _ *models.CardFee) error { return s.addErr }
func (s *stubCardStore) AddRequirement(_ context.Context, _ *models.CardRequirement) error {
	return s.addErr
}
func (s *stubCardStore) RetireBasic(_ context.Context, _, _ string) error       { return nil }
func (s *stubCardStore) RetireBenefit(_ context.Context, _, _ string) error     { return nil }
func (s *stubCardStore) RetireDiscount(_ context.Context, _, _ string) error    { return nil }
func (s *stubCardStore) RetireFee(_ context.Context, _, _ string) error         { return nil }
func (s *stubCardStore) RetireRequirement(_ context.Context, _, _ string) error { return nil }

func TestCreateCard_RatingBounds(t *testing.T) {
	for _, rating := range []float64{-0.5, 5.1} {
		store := &stubCardStore{}
		_, err := NewCardService(store).CreateCard(helpers.TestCtx(), dto.CardRequest{
			Name:   helpers.Ptr("Gold"),
			Rating: helpers.Ptr(rating),
		})
		var ve *errs.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("rating %v: err = %v, want ValidationError", rating, err)
		}
	}

	store := &stubCardStore{}
	resp, err := NewCardService(store).CreateCard(helpers.TestCtx(), dto.CardRequest{
		Name:   helpers.Ptr("Gold"),
		Rating: helpers.Ptr(5.0),
	})
	if err != nil {
		t.Fatalf("CreateCard returned error: %v", err)
	}
	if store.created == nil || helpers.Value(resp.Rating) != 5.0 {
		t.Fatalf("unexpected result: %+v", resp)
	}
	if resp.CardBasics == nil || resp.CardRequirements == nil {
		t.Fatalf("detail arrays must not be nil: %+v", resp)
	}
}

func TestAddCardBasic_OK(t *testing.T) {
	store := &stubCardStore{}
	svc := NewCardService(store)

	_, err := svc.AddBasic(helpers.TestCtx(), "card-1", dto.CardBasicRequest{YearlyFee: helpers.Ptr(int64(-1))})
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	resp, err := svc.AddBasic(helpers.TestCtx(), "card-1", dto.CardBasicRequest{CardOrg: helpers.Ptr("VISA")})
	if err != nil {
		t.Fatalf("AddBasic returned error: %v", err)
	}
	if store.addedBasic.CardID != "card-1" || helpers.Value(resp.CardOrg) != "VISA" {
		t.Fatalf("unexpected basic: %+v", store.addedBasic)
	}
}

func TestAddCardDetail_MissingCard(t *testing.T) {
	store := &stubCardStore{addErr: errs.NewNotFoundError("card not found")}
	_, err := NewCardService(store).AddFee(helpers.TestCtx(), "gone", dto.CardFeeRequest{})
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
