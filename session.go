package main

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ftirdash/internal/results"
)

func (a *app) sessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(a.cfg.SessionCookie)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return "", false
	}
	return c.Value, true
}

// currentStore returns the caller's live store. Requests without a live
// session get an empty store that is not registered, so browsing never
// creates sessions.
func (a *app) currentStore(r *http.Request) (string, *results.Store) {
	if id, ok := a.sessionID(r); ok {
		if store, ok := a.sessions.Lookup(id); ok {
			return id, store
		}
	}
	return "", results.NewStore(a.cfg.MaxRows)
}

// session returns the caller's store, creating the session and issuing
// its cookie when the request carries none or a malformed one.
func (a *app) session(w http.ResponseWriter, r *http.Request) (string, *results.Store) {
	if id, ok := a.sessionID(r); ok {
		return id, a.sessions.Get(id)
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     a.cfg.SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, a.sessions.Get(id)
}

// sweepSessions drops idle sessions every interval until ctx is done.
func (a *app) sweepSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.sessions.Sweep(); n > 0 {
				a.logger.Info("expired idle sessions", zap.Int("expired", n), zap.Int("live", a.sessions.Len()))
			}
		}
	}
}
