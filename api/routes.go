package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		cleanedAllowed := cleanOrigin(strings.TrimSpace(allowed))
		if cleanedAllowed == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			referer := r.Header.Get("Referer")
			if referer != "" {
				origin = referer
			}
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/v1/sessions", app.createSession)
	mux.HandleFunc("/v1/colors/convert", app.convertColor)
	mux.HandleFunc("/v1/colors/random", app.getRandomColor)
	mux.HandleFunc("/v1/colors/named", app.getNamedColor)

	// Session endpoints
	mux.HandleFunc("/v1/sessions/me", app.requireSession(app.deleteSession))
	mux.HandleFunc("/v1/colors", app.requireSession(app.getColors))
	mux.HandleFunc("/v1/colors/hsv", app.requireSession(app.updateHSV))
	mux.HandleFunc("/v1/colors/text", app.requireSession(app.updateFromText))

	finalMux.Handle("/", wrapMuxWithCorsAndOrigins(mux, app))

	return finalMux
}
