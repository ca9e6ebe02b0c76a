package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/config"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/utils"
)

const testSecret = "test-secret"

func testRateLimitConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       5,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
		Prefix:         "rl",
	}
}

func run(mw echo.MiddlewareFunc, prepare func(c echo.Context), header http.Header) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tables", nil)
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if prepare != nil {
		prepare(c)
	}
	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	return rec, mw(next)(c)
}

func TestJWTAuth(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, 42, "HOST", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + access.Token, wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authHeader: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.authHeader != "" {
				h.Set("Authorization", tt.authHeader)
			}
			rec, err := run(JWTAuth(testSecret), nil, h)
			if err != nil {
				t.Fatalf("middleware returned error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	access, err := utils.NewAccessToken("other-secret", 42, "HOST", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+access.Token)
	rec, err := run(JWTAuth(testSecret), nil, h)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       any
		allowed    []string
		wantStatus int
	}{
		{name: "manager allowed", role: "MANAGER", allowed: []string{"MANAGER", "HOST"}, wantStatus: http.StatusOK},
		{name: "host allowed", role: "HOST", allowed: []string{"MANAGER", "HOST"}, wantStatus: http.StatusOK},
		{name: "host rejected from manager endpoint", role: "HOST", allowed: []string{"MANAGER"}, wantStatus: http.StatusForbidden},
		{name: "unknown role rejected", role: "INTERN", allowed: []string{"MANAGER", "HOST"}, wantStatus: http.StatusForbidden},
		{name: "missing role rejected", role: nil, allowed: []string{"MANAGER", "HOST"}, wantStatus: http.StatusForbidden},
		{name: "non-string role rejected", role: 7, allowed: []string{"MANAGER", "HOST"}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prepare := func(c echo.Context) {
				if tt.role != nil {
					c.Set("role", tt.role)
				}
			}
			rec, err := run(RequireRole(tt.allowed...), prepare, nil)
			if err != nil {
				t.Fatalf("middleware returned error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCachePayloadCodec(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	body := []byte(`{"data":[]}`)

	encoded, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(encoded)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotHdr.Get("Content-Type"))
	}
	if string(gotBody) != string(body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestCachePayloadCodecRejectsTruncated(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}, {0, 0, 0, 200, 0, 0, 0, 99}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload(%v) accepted, want reject", bs)
		}
	}
}

func TestDisabledLimiterPassesThrough(t *testing.T) {
	// A nil Redis client must degrade the limiter to a no-op.
	rec, err := run(NewTokenBucket(testRateLimitConfig(), nil), nil, nil)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
