package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/color-picker/api/models"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Access-Control-Allow-Credentials, Access-Control-Allow-Origin, Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if r.Method == "OPTIONS" {
			return
		} else {
			h.ServeHTTP(w, r)
		}
	}
}

// getSessionIDFromJWT reads the session cookie, falling back to a bearer
// token for clients without cookies.
func (app *Application) getSessionIDFromJWT(r *http.Request) (string, error) {
	var tokenString string
	if cookie, err := r.Cookie(models.JWT.SESSION_COOKIE_NAME); err == nil {
		tokenString = cookie.Value
	} else if auth := r.Header.Get("Authorization"); len(auth) > len("Bearer ") && auth[:len("Bearer ")] == "Bearer " {
		tokenString = auth[len("Bearer "):]
	} else {
		return "", errors.New("no session token found")
	}

	claims, err := models.ValidateSessionToken(tokenString, app.Config.JwtSecret)
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}

// requireSession rejects requests without a valid session token and hands
// the session id to h through the request context.
func (app *Application) requireSession(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := app.getSessionIDFromJWT(r)
		if err != nil {
			app.invalidSession(w, r, err)
			return
		}

		if _, err := app.SessionRepo.Get(sessionID); err != nil {
			app.sessionNotFound(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		h.ServeHTTP(w, r.WithContext(ctx))
	}
}

func sessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey).(string)
	return sessionID
}
