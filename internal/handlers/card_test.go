package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/pkg/helpers"
)

type stubCardService struct {
	err        error
	lastID     string
	lastReq    dto.CardRequest
	lastBasic  dto.CardBasicRequest
	lastParent string
	lastChild  string
	calls      []string
}

func (s *stubCardService) record(name, parent, child string) {
	s.calls = append(s.calls, name)
	s.lastParent, s.lastChild = parent, child
}

func (s *stubCardService) ListCards(_ context.Context) ([]dto.CardResponse, error) {
	return []dto.CardResponse{}, s.err
}

func (s *stubCardService) GetCard(_ context.Context, id string) (dto.CardResponse, error) {
	s.lastID = id
	return dto.CardResponse{}, s.err
}

func (s *stubCardService) CreateCard(_ context.Context, req dto.CardRequest) (dto.CardResponse, error) {
	s.lastReq = req
	return dto.CardResponse{}, s.err
}

func (s *stubCardService) UpdateCard(_ context.Context, id string, req dto.CardRequest) (dto.CardResponse, error) {
	s.lastID, s.lastReq = id, req
	return dto.CardResponse{}, s.err
}

func (s *stubCardService) DeleteCard(_ context.Context, id string) error {
	s.lastID = id
	return s.err
}

func (s *stubCardService) AddBasic(_ context.Context, cardID string, req dto.CardBasicRequest) (dto.CardBasicResponse, error) {
	s.record("basic", cardID, "")
	s.lastBasic = req
	return dto.CardBasicResponse{}, s.err
}

func (s *stubCardService) AddBenefit(_ context.Context, cardID string, _ dto.LabelRequest) (dto.LabelResponse, error) {
	s.record("benefit", cardID, "")
	return dto.LabelResponse{}, s.err
}

func (s *stubCardService) AddDiscount(_ context.Context, cardID string, _ dto.LabelRequest) (dto.LabelResponse, error) {
	s.record("discount", cardID, "")
	return dto.LabelResponse{}, s.err
}

func (s *stubCardService) AddFee(_ context.Context, cardID string, _ dto.CardFeeRequest) (dto.CardFeeResponse, error) {
	s.record("fee", cardID, "")
	return dto.CardFeeResponse{}, s.err
}

func (s *stubCardService) AddRequirement(_ context.Context, cardID string, _ dto.CardRequirementRequest) (dto.CardRequirementResponse, error) {
	s.record("requirement", cardID, "")
	return dto.CardRequirementResponse{}, s.err
}

func (s *stubCardService) RemoveBasic(_ context.Context, cardID, id string) error {
	s.record("-basic", cardID, id)
	return s.err
}

func (s *stubCardService) RemoveBenefit(_ context.Context, cardID, id string) error {
	s.record("-benefit", cardID, id)
	return s.err
}

func (s *stubCardService) RemoveDiscount(_ context.Context, cardID, id string) error {
	s.record("-discount", cardID, id)
	return s.err
}

func (s *stubCardService) RemoveFee(_ context.Context, cardID, id string) error {
	s.record("-fee", cardID, id)
	return s.err
}

func (s *stubCardService) RemoveRequirement(_ context.Context, cardID, id string) error {
	s.record("-requirement", cardID, id)
	return s.err
}

func TestCardRoutes_DetailDispatch(t *testing.T) {
	svc := &stubCardService{}
	routes := NewCardHandlers(&Deps{ResponseHandler: &stubResponseHandler{}, CardSvc: svc}).CardRoutes()

	for _, kind := range []string{"basic", "benefit", "discount", "fee", "requirement"} {
		svc.calls = nil
		req := httptest.NewRequest(http.MethodPost, "/c1/"+kind+"s", strings.NewReader(`{}`))
		routes.ServeHTTP(httptest.NewRecorder(), req)
		if len(svc.calls) != 1 || svc.calls[0] != kind || svc.lastParent != "c1" {
			t.Fatalf("POST %ss: calls=%v parent=%q", kind, svc.calls, svc.lastParent)
		}

		svc.calls = nil
		req = httptest.NewRequest(http.MethodDelete, "/c1/"+kind+"s/x9", nil)
		routes.ServeHTTP(httptest.NewRecorder(), req)
		if len(svc.calls) != 1 || svc.calls[0] != "-"+kind || svc.lastChild != "x9" {
			t.Fatalf("DELETE %ss: calls=%v child=%q", kind, svc.calls, svc.lastChild)
		}
	}
}

func TestAddCardBasic_Body(t *testing.T) {
	svc := &stubCardService{}
	resp := &stubResponseHandler{}
	routes := NewCardHandlers(&Deps{ResponseHandler: resp, CardSvc: svc}).CardRoutes()

	body := `{"freeAirportLounge":4,"yearlyFee":120000,"cardOrg":"VISA"}`
	routes.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/c1/basics", strings.NewReader(body)))

	if helpers.Value(svc.lastBasic.FreeAirportLounge) != 4 || helpers.Value(svc.lastBasic.CardOrg) != "VISA" {
		t.Fatalf("unexpected basic: %+v", svc.lastBasic)
	}
	if resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.writeSuccessStatus)
	}
}

func TestDeleteCard_ServiceError(t *testing.T) {
	svc := &stubCardService{err: errs.NewNotFoundError("card not found")}
	resp := &stubResponseHandler{}
	h := NewCardHandlers(&Deps{ResponseHandler: resp, CardSvc: svc})

	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/cards/c1", nil), "id", "c1")
	h.DeleteCard(httptest.NewRecorder(), req)

	if !resp.handleErrorCalled || svc.lastID != "c1" {
		t.Fatalf("expected HandleError for c1, got called=%v id=%q", resp.handleErrorCalled, svc.lastID)
	}
}
