package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/pkg/helpers"
)

func decodeObject(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestBankResponseEmbedsEmptyDetailArrays(t *testing.T) {
	bank := &models.Bank{Name: helpers.Ptr("Khan Bank")}
	bank.ID = "b1"

	got := decodeObject(t, NewBankResponse(bank))

	for _, key := range []string{"bankFees", "bankRequirements", "bankDiscounts"} {
		list, ok := got[key].([]any)
		if !ok {
			t.Fatalf("%s = %#v, want array", key, got[key])
		}
		if len(list) != 0 {
			t.Fatalf("%s has %d items, want 0", key, len(list))
		}
	}
	if got["id"] != "b1" || got["name"] != "Khan Bank" {
		t.Fatalf("unexpected parent fields: %v", got)
	}
}

func TestDetailRowsExposeIDButNotBookkeeping(t *testing.T) {
	card := &models.Card{
		Fees: []models.CardFee{{CardID: "c1", LatePayment: helpers.Ptr("5%")}},
	}
	card.Fees[0].ID = "f1"
	card.Fees[0].Status = models.StatusActive

	got := decodeObject(t, NewCardResponse(card))
	fees := got["cardFees"].([]any)
	if len(fees) != 1 {
		t.Fatalf("cardFees has %d items, want 1", len(fees))
	}
	fee := fees[0].(map[string]any)
	if fee["id"] != "f1" || fee["latePayment"] != "5%" {
		t.Fatalf("unexpected fee: %v", fee)
	}
	for _, key := range []string{"cardId", "createdAt", "updatedAt", "status"} {
		if _, ok := fee[key]; ok {
			t.Fatalf("fee exposes %q: %v", key, fee)
		}
	}
}

func TestUserResponseOmitsPassword(t *testing.T) {
	dob := time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC)
	user := &models.User{
		PhoneNumber: "99112233",
		Password:    helpers.Ptr("hash"),
		DateOfBirth: &dob,
		Role:        models.RoleStaff,
	}

	raw, err := json.Marshal(NewUserResponse(user))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "password") || strings.Contains(string(raw), "hash") {
		t.Fatalf("password leaked: %s", raw)
	}
	if !strings.Contains(string(raw), `"dateOfBirth":"1990-05-04"`) {
		t.Fatalf("unexpected date of birth: %s", raw)
	}
}

func TestListsNeverNull(t *testing.T) {
	raw, err := json.Marshal(NewCityList(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("got %s, want []", raw)
	}
}
