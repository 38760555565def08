package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/shelfwatch/pkg/logger"
)

const sessionName = "shelfwatch_session"
const sessionUserIDKey = "user_id"

// WithUser is a chi middleware that resolves a per-session user ID
// before any store access. It never rejects a request: when the session
// is missing, invalid or unreadable, it mints a random local user ID,
// persists it in a fresh session and continues in degraded local-only
// mode. Identity failure degrades, it does not block.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func WithUser(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				// Tampered or undecodable cookie — start over.
				log.WarnContext(r.Context(), "invalid session cookie, issuing local identity", "error", err)
				session, _ = store.New(r, sessionName)
			}

			userID := sessionUserID(session)
			if userID == uuid.Nil {
				userID = uuid.New()
				session.Values[sessionUserIDKey] = userID.String()
				if err := session.Save(r, w); err != nil {
					// Session store down: keep serving with the ephemeral
					// ID; the next request mints another one.
					log.WarnContext(r.Context(), "session save failed, identity is ephemeral", "error", err)
				}
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionUserID(session *sessions.Session) uuid.UUID {
	if session == nil {
		return uuid.Nil
	}
	s, ok := session.Values[sessionUserIDKey].(string)
	if !ok || s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
