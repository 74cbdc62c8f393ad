package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/barkada-pos/api/internal/handler"
	"github.com/barkada-pos/api/internal/notify"
	"github.com/barkada-pos/api/internal/voucher"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func setupVouchers(t *testing.T) (*chi.Mux, *voucher.Store, *notify.Store) {
	t.Helper()
	store := voucher.NewStore()
	notifications := notify.NewStore()

	h := handler.NewVoucherHandler(store, notifications)
	r := chi.NewRouter()
	r.Use(claimsInjector(uuid.New(), "Liza Dela Cruz", enum.RoleManager))
	h.RegisterManageRoutes(r)
	h.RegisterRedeemRoutes(r)
	return r, store, notifications
}

func generateBody() map[string]interface{} {
	return map[string]interface{}{
		"quantity":        3,
		"type":            "percentage",
		"value":           "20",
		"item_offer":      "20% off total bill",
		"event_purpose":   "Anniversary weekend",
		"expiration_date": time.Now().Add(30 * 24 * time.Hour),
		"usage_limit":     1,
	}
}

func TestVouchers_GenerateBatch(t *testing.T) {
	router, _, _ := setupVouchers(t)

	rr := doRequest(t, router, "POST", "/vouchers/generate", generateBody())
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	batch := decodeMap(t, rr)["vouchers"].([]interface{})
	if len(batch) != 3 {
		t.Fatalf("batch: got %d, want 3", len(batch))
	}
	first := batch[0].(map[string]interface{})
	if first["created_by"] != "Liza Dela Cruz" {
		t.Errorf("created_by: got %v", first["created_by"])
	}
	if first["value"] != "20.00" {
		t.Errorf("value formatting: got %v, want 20.00", first["value"])
	}
}

func TestVouchers_GenerateValidation(t *testing.T) {
	router, _, _ := setupVouchers(t)

	body := generateBody()
	body["item_offer"] = ""
	rr := doRequest(t, router, "POST", "/vouchers/generate", body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	body = generateBody()
	body["value"] = "twenty"
	rr = doRequest(t, router, "POST", "/vouchers/generate", body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad value status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestVouchers_GenerateAcceptsPesoFormattedValue(t *testing.T) {
	router, _, _ := setupVouchers(t)

	body := generateBody()
	body["type"] = "fixed_amount"
	body["value"] = "₱1,500.00"
	rr := doRequest(t, router, "POST", "/vouchers/generate", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	batch := decodeMap(t, rr)["vouchers"].([]interface{})
	first := batch[0].(map[string]interface{})
	if first["value"] != "1500.00" {
		t.Errorf("value: got %v, want 1500.00", first["value"])
	}
}

func TestVouchers_RedeemFlow(t *testing.T) {
	router, store, notifications := setupVouchers(t)

	batch, err := store.Generate(voucher.GenerateRequest{
		Quantity:       1,
		Type:           enum.VoucherTypeFreeItem,
		ItemOffer:      "Free San Miguel Beer",
		EventPurpose:   "Ladies night",
		ExpirationDate: time.Now().Add(24 * time.Hour),
		UsageLimit:     1,
		CreatedBy:      "Liza Dela Cruz",
	})
	if err != nil {
		t.Fatalf("seed voucher: %v", err)
	}
	code := batch[0].Code

	rr := doRequest(t, router, "POST", "/vouchers/"+code+"/redeem", map[string]string{"customer_info": "customer #1247"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if decodeMap(t, rr)["used_count"].(float64) != 1 {
		t.Error("used count not bumped")
	}
	if got := notifications.UnreadCount(enum.RoleOwner); got != 1 {
		t.Errorf("owner notifications: got %d, want 1", got)
	}

	// Exhausted on the second scan.
	rr = doRequest(t, router, "POST", "/vouchers/"+code+"/redeem", map[string]string{})
	if rr.Code != http.StatusConflict {
		t.Fatalf("exhausted status: got %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestVouchers_RedeemUnknownCode(t *testing.T) {
	router, _, _ := setupVouchers(t)

	rr := doRequest(t, router, "POST", "/vouchers/BKD-NOPE00-NOPE00/redeem", map[string]string{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestVouchers_List(t *testing.T) {
	router, _, _ := setupVouchers(t)

	doRequest(t, router, "POST", "/vouchers/generate", generateBody())
	rr := doRequest(t, router, "GET", "/vouchers", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if got := len(decodeMap(t, rr)["vouchers"].([]interface{})); got != 3 {
		t.Errorf("vouchers: got %d, want 3", got)
	}
}
