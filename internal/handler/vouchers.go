package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/barkada-pos/api/internal/currency"
	mw "github.com/barkada-pos/api/internal/middleware"
	"github.com/barkada-pos/api/internal/notify"
	"github.com/barkada-pos/api/internal/voucher"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherHandler issues voucher batches and redeems codes at the door.
type VoucherHandler struct {
	store         *voucher.Store
	notifications *notify.Store
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(store *voucher.Store, notifications *notify.Store) *VoucherHandler {
	return &VoucherHandler{store: store, notifications: notifications}
}

// RegisterManageRoutes registers voucher issuance endpoints.
func (h *VoucherHandler) RegisterManageRoutes(r chi.Router) {
	r.Get("/vouchers", h.List)
	r.Post("/vouchers/generate", h.Generate)
}

// RegisterRedeemRoutes registers the redemption endpoint, gated
// separately so door security can redeem without managing.
func (h *VoucherHandler) RegisterRedeemRoutes(r chi.Router) {
	r.Post("/vouchers/{code}/redeem", h.Redeem)
}

type generateVouchersRequest struct {
	Quantity       int       `json:"quantity"`
	Type           string    `json:"type"`
	Value          string    `json:"value"`
	ItemOffer      string    `json:"item_offer"`
	EventPurpose   string    `json:"event_purpose"`
	ExpirationDate time.Time `json:"expiration_date"`
	UsageLimit     int       `json:"usage_limit"`
}

type redeemVoucherRequest struct {
	CustomerInfo string `json:"customer_info"`
}

type voucherResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Type           string    `json:"type"`
	Value          string    `json:"value"`
	ItemOffer      string    `json:"item_offer"`
	EventPurpose   string    `json:"event_purpose"`
	ExpirationDate time.Time `json:"expiration_date"`
	UsageLimit     int       `json:"usage_limit"`
	UsedCount      int       `json:"used_count"`
	IsActive       bool      `json:"is_active"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// List returns all issued vouchers, newest batch first.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	vouchers := h.store.List()
	out := make([]voucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, toVoucherResponse(v))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"vouchers": out})
}

// Generate issues a batch of codes for one offer.
func (h *VoucherHandler) Generate(w http.ResponseWriter, r *http.Request) {
	claims := mw.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req generateVouchersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	// Accepts plain ("1500") and peso-formatted ("₱1,500.00") values.
	value := decimal.Zero
	if req.Value != "" {
		value = currency.ParsePHP(req.Value)
		if value.IsZero() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid value"})
			return
		}
	}

	batch, err := h.store.Generate(voucher.GenerateRequest{
		Quantity:       req.Quantity,
		Type:           strings.ToUpper(req.Type),
		Value:          value,
		ItemOffer:      req.ItemOffer,
		EventPurpose:   req.EventPurpose,
		ExpirationDate: req.ExpirationDate,
		UsageLimit:     req.UsageLimit,
		CreatedBy:      claims.FullName,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	out := make([]voucherResponse, 0, len(batch))
	for _, v := range batch {
		out = append(out, toVoucherResponse(v))
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"vouchers": out})
}

// Redeem consumes one use of a code and logs it for management.
func (h *VoucherHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.CustomerInfo == "" {
		req.CustomerInfo = "walk-in customer"
	}

	v, err := h.store.Redeem(chi.URLParam(r, "code"))
	if err != nil {
		switch {
		case errors.Is(err, voucher.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "voucher not found"})
		case errors.Is(err, voucher.ErrExpired):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "voucher expired"})
		case errors.Is(err, voucher.ErrExhausted):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "voucher usage limit reached"})
		case errors.Is(err, voucher.ErrInactive):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "voucher deactivated"})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}

	h.notifications.Push(notify.VoucherRedeemed(v.Code, req.CustomerInfo))
	writeJSON(w, http.StatusOK, toVoucherResponse(v))
}

func toVoucherResponse(v voucher.Voucher) voucherResponse {
	return voucherResponse{
		ID:             v.ID,
		Code:           v.Code,
		Type:           v.Type,
		Value:          v.Value.StringFixed(2),
		ItemOffer:      v.ItemOffer,
		EventPurpose:   v.EventPurpose,
		ExpirationDate: v.ExpirationDate,
		UsageLimit:     v.UsageLimit,
		UsedCount:      v.UsedCount,
		IsActive:       v.IsActive,
		CreatedBy:      v.CreatedBy,
		CreatedAt:      v.CreatedAt,
	}
}
