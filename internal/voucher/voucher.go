// Package voucher issues and redeems promo codes. Managers generate
// batches for an event; security scans codes at the door and redeems
// them until the usage limit or expiry is hit.
package voucher

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("voucher not found")
	ErrExpired         = errors.New("voucher expired")
	ErrExhausted       = errors.New("voucher usage limit reached")
	ErrInactive        = errors.New("voucher deactivated")
	ErrInvalidType     = errors.New("invalid voucher type")
	ErrInvalidQuantity = errors.New("quantity must be > 0")
	ErrMissingOffer    = errors.New("item offer is required")
	ErrMissingPurpose  = errors.New("event purpose is required")
	ErrInvalidValue    = errors.New("discount value must be > 0")
)

// Voucher is one redeemable code.
type Voucher struct {
	ID             uuid.UUID
	Code           string
	Type           string
	Value          decimal.Decimal
	ItemOffer      string
	EventPurpose   string
	ExpirationDate time.Time
	UsageLimit     int
	UsedCount      int
	IsActive       bool
	CreatedBy      string
	CreatedAt      time.Time
}

// GenerateRequest describes one batch of vouchers to issue.
type GenerateRequest struct {
	Quantity       int
	Type           string
	Value          decimal.Decimal
	ItemOffer      string
	EventPurpose   string
	ExpirationDate time.Time
	UsageLimit     int
	CreatedBy      string
}

// Store holds issued vouchers keyed by code. Safe for concurrent handlers.
type Store struct {
	mu       sync.Mutex
	byCode   map[string]*Voucher
	now      func() time.Time
	codeFunc func() string
}

// NewStore creates an empty voucher store.
func NewStore() *Store {
	return &Store{
		byCode:   make(map[string]*Voucher),
		now:      time.Now,
		codeFunc: newCode,
	}
}

// newCode derives a short printable code from a fresh UUID. The first
// two UUID groups give 12 hex chars, enough to keep batch collisions
// out of practical reach.
func newCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BKD-" + raw[:6] + "-" + raw[6:12]
}

// Generate validates the request and issues Quantity vouchers sharing
// the same offer, each with its own code.
func (s *Store) Generate(req GenerateRequest) ([]Voucher, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if strings.TrimSpace(req.ItemOffer) == "" {
		return nil, ErrMissingOffer
	}
	if strings.TrimSpace(req.EventPurpose) == "" {
		return nil, ErrMissingPurpose
	}
	switch req.Type {
	case enum.VoucherTypePercentage, enum.VoucherTypeFixed:
		if !req.Value.IsPositive() {
			return nil, ErrInvalidValue
		}
	case enum.VoucherTypeFreeItem, enum.VoucherTypeBogo:
		// Value carries no meaning for these types.
	default:
		return nil, ErrInvalidType
	}
	if req.UsageLimit <= 0 {
		req.UsageLimit = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Voucher, 0, req.Quantity)
	for i := 0; i < req.Quantity; i++ {
		v := &Voucher{
			ID:             uuid.New(),
			Code:           s.codeFunc(),
			Type:           req.Type,
			Value:          req.Value,
			ItemOffer:      req.ItemOffer,
			EventPurpose:   req.EventPurpose,
			ExpirationDate: req.ExpirationDate,
			UsageLimit:     req.UsageLimit,
			IsActive:       true,
			CreatedBy:      req.CreatedBy,
			CreatedAt:      s.now(),
		}
		s.byCode[v.Code] = v
		out = append(out, *v)
	}
	return out, nil
}

// Lookup returns the voucher for a code without redeeming it.
func (s *Store) Lookup(code string) (Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byCode[normalize(code)]
	if !ok {
		return Voucher{}, ErrNotFound
	}
	return *v, nil
}

// Redeem consumes one use of the voucher. Expired, deactivated, and
// exhausted codes are rejected without touching the count.
func (s *Store) Redeem(code string) (Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byCode[normalize(code)]
	if !ok {
		return Voucher{}, ErrNotFound
	}
	if !v.IsActive {
		return *v, ErrInactive
	}
	if s.now().After(v.ExpirationDate) {
		return *v, ErrExpired
	}
	if v.UsedCount >= v.UsageLimit {
		return *v, ErrExhausted
	}

	v.UsedCount++
	return *v, nil
}

// Deactivate pulls a voucher from circulation before its expiry.
func (s *Store) Deactivate(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byCode[normalize(code)]
	if !ok {
		return ErrNotFound
	}
	v.IsActive = false
	return nil
}

// List returns all vouchers, newest first, with ties broken by code so
// batches render in a stable order.
func (s *Store) List() []Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Voucher, 0, len(s.byCode))
	for _, v := range s.byCode {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
