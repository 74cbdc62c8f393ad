package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/barkada-pos/api/internal/auth"
	"github.com/barkada-pos/api/internal/authz"
	"github.com/barkada-pos/api/internal/enum"
	"github.com/barkada-pos/api/internal/middleware"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func authedRequest(t *testing.T, role string) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, uuid.New(), "Test Staff", role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	h := middleware.Authenticate(testSecret)(okHandler())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rr.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	h := middleware.Authenticate(testSecret)(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rr.Code)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	h := middleware.Authenticate(testSecret)(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rr.Code)
	}
}

func TestAuthenticate_ValidTokenExposesClaims(t *testing.T) {
	var got *auth.Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.Authenticate(testSecret)(inner)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, authedRequest(t, enum.RoleWaiter))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if got == nil || got.Role != enum.RoleWaiter {
		t.Errorf("claims not propagated: %+v", got)
	}
}

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name string
		role string
		caps []authz.Capability
		want int
	}{
		{"waiter can operate pos", enum.RoleWaiter, []authz.Capability{authz.CapPOSOperate}, http.StatusOK},
		{"kitchen cannot operate pos", enum.RoleKitchen, []authz.Capability{authz.CapPOSOperate}, http.StatusForbidden},
		{"any of several capabilities suffices", enum.RoleKitchen, []authz.Capability{authz.CapPOSOperate, authz.CapQueueAdvance}, http.StatusOK},
		{"security locked out of queue", enum.RoleSecurity, []authz.Capability{authz.CapQueueView}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middleware.Authenticate(testSecret)(
				middleware.RequireCapability(tt.caps...)(okHandler()),
			)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, authedRequest(t, tt.role))

			if rr.Code != tt.want {
				t.Errorf("status: got %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestRequireCapability_Unauthenticated(t *testing.T) {
	h := middleware.RequireCapability(authz.CapPOSOperate)(okHandler())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rr.Code)
	}
}
