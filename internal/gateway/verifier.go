package gateway

import (
	"context"
	"errors"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaffNotFound      = errors.New("staff not found")
)

// Staff identifies an authenticated staff member.
type Staff struct {
	ID       uuid.UUID
	Username string
	Email    string
	FullName string
	Role     string
}

// CredentialVerifier authenticates staff credentials. The in-process
// implementation is a fixed directory; a real identity backend can be
// swapped in without touching handlers.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (Staff, error)
	StaffByID(ctx context.Context, id uuid.UUID) (Staff, error)
}

// Account seeds one entry of the static staff directory.
type Account struct {
	Username string
	Email    string
	FullName string
	Role     string
	Password string
}

// StaticVerifier is a CredentialVerifier over a fixed account list.
// Passwords are bcrypt-hashed at construction; plaintext is not retained.
type StaticVerifier struct {
	byUsername map[string]staffRecord
	byID       map[uuid.UUID]staffRecord
}

type staffRecord struct {
	staff          Staff
	hashedPassword []byte
}

// NewStaticVerifier builds a verifier from the given accounts.
func NewStaticVerifier(accounts []Account) (*StaticVerifier, error) {
	v := &StaticVerifier{
		byUsername: make(map[string]staffRecord, len(accounts)),
		byID:       make(map[uuid.UUID]staffRecord, len(accounts)),
	}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		rec := staffRecord{
			staff: Staff{
				ID:       uuid.New(),
				Username: a.Username,
				Email:    a.Email,
				FullName: a.FullName,
				Role:     a.Role,
			},
			hashedPassword: hash,
		}
		v.byUsername[a.Username] = rec
		v.byID[rec.staff.ID] = rec
	}
	return v, nil
}

// Verify checks username and password against the directory.
func (v *StaticVerifier) Verify(_ context.Context, username, password string) (Staff, error) {
	rec, ok := v.byUsername[username]
	if !ok {
		return Staff{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.hashedPassword, []byte(password)); err != nil {
		return Staff{}, ErrInvalidCredentials
	}
	return rec.staff, nil
}

// StaffByID resolves a staff member from their ID (used by token refresh).
func (v *StaticVerifier) StaffByID(_ context.Context, id uuid.UUID) (Staff, error) {
	rec, ok := v.byID[id]
	if !ok {
		return Staff{}, ErrStaffNotFound
	}
	return rec.staff, nil
}

// Staff returns every staff member in the directory. Used at startup to
// seed per-staff state such as performance history.
func (v *StaticVerifier) Staff() []Staff {
	out := make([]Staff, 0, len(v.byID))
	for _, rec := range v.byID {
		out = append(out, rec.staff)
	}
	return out
}

// DemoAccounts is the seed staff directory, one account per role.
// Demo credentials only; replace the verifier for a real deployment.
func DemoAccounts() []Account {
	return []Account{
		{Username: "owner", Email: "owner@barkada.ph", FullName: "Ramon Villanueva", Role: enum.RoleOwner, Password: "owner123"},
		{Username: "manager", Email: "manager@barkada.ph", FullName: "Liza Dela Cruz", Role: enum.RoleManager, Password: "manager123"},
		{Username: "bartender", Email: "bartender@barkada.ph", FullName: "Juan Cruz", Role: enum.RoleBartender, Password: "bartender123"},
		{Username: "kitchen", Email: "kitchen@barkada.ph", FullName: "Bong Ramirez", Role: enum.RoleKitchen, Password: "kitchen123"},
		{Username: "waiter", Email: "waiter@barkada.ph", FullName: "Maria Santos", Role: enum.RoleWaiter, Password: "waiter123"},
		{Username: "security", Email: "security@barkada.ph", FullName: "Edgar Bautista", Role: enum.RoleSecurity, Password: "security123"},
		{Username: "developer", Email: "dev@barkada.ph", FullName: "Kai Mendoza", Role: enum.RoleDeveloper, Password: "dev123"},
	}
}
