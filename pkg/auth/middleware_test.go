package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/shelfwatch/pkg/config"
	"github.com/ghuser/shelfwatch/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

// newTestLogger creates a logger that discards output.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// requestWithSession builds an *http.Request that carries a valid session
// cookie containing the given userID.
func requestWithSession(t *testing.T, store sessions.Store, userID uuid.UUID) *http.Request {
	t.Helper()

	// Write the session cookie into a recorder, then copy it to the real request.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/stock", nil)

	session, err := store.Get(r, sessionName)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	session.Values[sessionUserIDKey] = userID.String()
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save session: %v", err)
	}

	// Copy Set-Cookie header from recorder to a fresh request.
	req := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestWithUser_ExistingSession(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()
	userID := uuid.New()

	var capturedUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserID, _ = UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := requestWithSession(t, store, userID)
	w := httptest.NewRecorder()
	WithUser(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if capturedUserID != userID {
		t.Fatalf("expected user ID %v in context, got %v", userID, capturedUserID)
	}
}

func TestWithUser_MissingCookieMintsIdentity(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	var capturedUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserID, _ = UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	w := httptest.NewRecorder()
	WithUser(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if capturedUserID == uuid.Nil {
		t.Fatal("expected a minted user ID in context")
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatal("expected the minted identity to be persisted in a session cookie")
	}
}

func TestWithUser_TamperedCookieMintsIdentity(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	var capturedUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserID, _ = UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	r.AddCookie(&http.Cookie{Name: sessionName, Value: "garbage-not-a-session"})
	w := httptest.NewRecorder()
	WithUser(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("identity failure must degrade, not block: got %d", w.Code)
	}
	if capturedUserID == uuid.Nil {
		t.Fatal("expected a minted user ID in context")
	}
}

func TestWithUser_InvalidUserIDInSession(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	writeReq := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	w1 := httptest.NewRecorder()
	session, _ := store.Get(writeReq, sessionName)
	session.Values[sessionUserIDKey] = "not-a-valid-uuid"
	_ = session.Save(writeReq, w1)

	r := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	for _, c := range w1.Result().Cookies() {
		r.AddCookie(c)
	}

	var capturedUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserID, _ = UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	WithUser(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if capturedUserID == uuid.Nil {
		t.Fatal("expected a replacement user ID in context")
	}
}

func TestWithUser_IdentityStableAcrossRequests(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	var first, second uuid.UUID
	capture := func(dst *uuid.UUID) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*dst, _ = UserIDFromCtx(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	}

	// First request mints and persists an identity.
	r1 := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	w1 := httptest.NewRecorder()
	WithUser(store, log)(capture(&first)).ServeHTTP(w1, r1)

	// Second request replays the issued cookie.
	r2 := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	for _, c := range w1.Result().Cookies() {
		r2.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	WithUser(store, log)(capture(&second)).ServeHTTP(w2, r2)

	if first == uuid.Nil || second == uuid.Nil {
		t.Fatalf("expected minted identities, got %v and %v", first, second)
	}
	if first != second {
		t.Fatalf("identity not stable across requests: %v vs %v", first, second)
	}
}
