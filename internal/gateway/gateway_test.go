package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/barkada-pos/api/internal/gateway"
	"github.com/barkada-pos/api/internal/order"
	"github.com/barkada-pos/api/internal/queue"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestQueueGateway_SubmitEnqueuesTicket(t *testing.T) {
	q := queue.NewStore()
	gw := gateway.NewQueueGateway(q)

	lines := []order.Line{
		{MenuItemID: "f-1", Name: "Chicken Wings", UnitPrice: decimal.NewFromInt(280), Quantity: 1},
	}

	receipt, err := gw.SubmitOrder(context.Background(), gateway.CheckoutSubmission{
		Lines:       lines,
		TableNumber: "T1",
		StaffID:     uuid.New(),
		StaffName:   "Maria Santos",
		Stations:    []string{enum.StationKitchen},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if receipt.TicketNumber != "BKD-001" {
		t.Errorf("ticket number: got %s", receipt.TicketNumber)
	}

	tk, err := q.Get(receipt.Reference)
	if err != nil {
		t.Fatalf("ticket not enqueued: %v", err)
	}
	if tk.Status != enum.TicketStatusNew {
		t.Errorf("status: got %s, want NEW", tk.Status)
	}
	if len(tk.Lines) != 1 || tk.Lines[0].MenuItemID != "f-1" {
		t.Errorf("lines: got %+v", tk.Lines)
	}
}

func TestStaticVerifier_VerifyAndLookup(t *testing.T) {
	v, err := gateway.NewStaticVerifier([]gateway.Account{
		{Username: "waiter", Email: "waiter@barkada.ph", FullName: "Maria Santos", Role: enum.RoleWaiter, Password: "waiter123"},
	})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	staff, err := v.Verify(context.Background(), "waiter", "waiter123")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if staff.Role != enum.RoleWaiter {
		t.Errorf("role: got %s", staff.Role)
	}
	if staff.FullName != "Maria Santos" {
		t.Errorf("full name: got %s", staff.FullName)
	}

	again, err := v.StaffByID(context.Background(), staff.ID)
	if err != nil {
		t.Fatalf("staff by id: %v", err)
	}
	if again.Username != "waiter" {
		t.Errorf("username: got %s", again.Username)
	}
}

func TestStaticVerifier_RejectsBadCredentials(t *testing.T) {
	v, err := gateway.NewStaticVerifier([]gateway.Account{
		{Username: "waiter", Role: enum.RoleWaiter, Password: "waiter123"},
	})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	if _, err := v.Verify(context.Background(), "waiter", "wrong"); !errors.Is(err, gateway.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := v.Verify(context.Background(), "nobody", "waiter123"); !errors.Is(err, gateway.ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v", err)
	}
	if _, err := v.StaffByID(context.Background(), uuid.New()); !errors.Is(err, gateway.ErrStaffNotFound) {
		t.Errorf("unknown id: got %v", err)
	}
}

func TestDemoAccounts_CoverEveryRole(t *testing.T) {
	roles := map[string]bool{}
	for _, a := range gateway.DemoAccounts() {
		roles[a.Role] = true
	}
	for _, role := range []string{
		enum.RoleOwner, enum.RoleManager, enum.RoleBartender, enum.RoleKitchen,
		enum.RoleWaiter, enum.RoleSecurity, enum.RoleDeveloper,
	} {
		if !roles[role] {
			t.Errorf("no demo account for role %s", role)
		}
	}
}
