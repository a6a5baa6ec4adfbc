package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/color-picker/api/colors"
	"github.com/color-picker/api/datastore"
	"github.com/color-picker/api/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (app *Application) sessionLifetime() time.Duration {
	return time.Second * time.Duration(app.Config.SessionDuration)
}

func newSessionResponse(session models.Session, model *colors.Model) models.SessionResponse {
	return models.SessionResponse{
		Session: session,
		Colors:  model.GetAll(),
		Hue:     colors.FormatRGB(model.HueRGB()),
	}
}

// handleColorError maps engine and store errors onto responses
func (app *Application) handleColorError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, datastore.ErrSessionNotFound), errors.Is(err, datastore.ErrSessionExpired):
		app.sessionNotFound(w, r, err)
	case errors.Is(err, colors.ErrParseMismatch):
		app.colorMismatch(w, r, err)
	case errors.Is(err, colors.ErrUnknownRepresentation):
		app.badRequest(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

// withSession runs fn on the caller's model and slides the session expiry
func (app *Application) withSession(r *http.Request, fn func(model *colors.Model) error) (models.SessionResponse, error) {
	var response models.SessionResponse
	_, err := app.SessionRepo.With(sessionIDFromContext(r.Context()), func(session *models.Session, model *colors.Model) error {
		if err := fn(model); err != nil {
			return err
		}
		now := time.Now()
		session.UpdatedAt = now
		session.Expiry = now.Add(app.sessionLifetime())
		response = newSessionResponse(*session, model)
		return nil
	})
	return response, err
}

// decodeColorText reads a {representation, text} body
func decodeColorText(r *http.Request) (models.Representation, string, error) {
	req := models.ColorTextRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", err
	}
	rep, err := models.ParseRepresentation(req.Representation)
	if err != nil {
		return "", "", err
	}
	return rep, req.Text, nil
}

func (app *Application) setSessionCookie(w http.ResponseWriter, token string, expiry time.Time) {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.JWT.SESSION_COOKIE_NAME,
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expiry,
	})
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Color Picker API")
}

// POST /v1/sessions
func (app *Application) createSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	initial := app.Config.DefaultColor

	// An optional body seeds the session with a typed color
	req := models.ColorTextRequest{}
	errParsingJson := json.NewDecoder(r.Body).Decode(&req)
	switch {
	case errors.Is(errParsingJson, io.EOF):
		// no body
	case errParsingJson != nil:
		app.badJSONRequest(w, r, errParsingJson)
		return
	default:
		rep, err := models.ParseRepresentation(req.Representation)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		seeded, err := colors.ToHSV(rep, req.Text)
		if err != nil {
			app.colorMismatch(w, r, err)
			return
		}
		initial = seeded
	}

	session, err := app.SessionRepo.Create(models.NewSession(app.sessionLifetime()), initial)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	token, err := models.NewSessionToken(session, app.Config.JwtSecret)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.setSessionCookie(w, token, session.Expiry)
	w.Header().Set("Authorization", "Bearer "+token)

	writeJSON(w, http.StatusCreated, newSessionResponse(session, colors.NewModel(initial)))
}

// DELETE /v1/sessions/me
func (app *Application) deleteSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		app.requireMethod(w, r, http.MethodDelete, ErrDELETE)
		return
	}

	sessionID := sessionIDFromContext(r.Context())
	if err := app.SessionRepo.Delete(sessionID); err != nil {
		app.handleColorError(w, r, err)
		return
	}

	app.setSessionCookie(w, "", time.Unix(0, 0))
	writeJSON(w, http.StatusOK, map[string]string{"deleted": sessionID})
}

// GET /v1/colors
func (app *Application) getColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	response, err := app.withSession(r, func(*colors.Model) error { return nil })
	if err != nil {
		app.handleColorError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// PUT /v1/colors/hsv
func (app *Application) updateHSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requireMethod(w, r, http.MethodPut, ErrPUT)
		return
	}

	req := models.HSVUpdateRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	response, err := app.withSession(r, func(model *colors.Model) error {
		model.Update(colors.ClampHSV(req.Merge(model.HSV())))
		return nil
	})
	if err != nil {
		app.handleColorError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// POST /v1/colors/text
func (app *Application) updateFromText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	rep, text, err := decodeColorText(r)
	if err != nil {
		app.handleDecodeError(w, r, err)
		return
	}

	response, err := app.withSession(r, func(model *colors.Model) error {
		return model.UpdateFrom(rep, text)
	})
	if err != nil {
		app.handleColorError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// GET|POST /v1/colors/convert
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	var rep models.Representation
	var text string
	var err error

	switch r.Method {
	case http.MethodGet:
		query := r.URL.Query()
		rep, err = models.ParseRepresentation(query.Get("representation"))
		text = query.Get("text")
	case http.MethodPost:
		rep, text, err = decodeColorText(r)
	default:
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}
	if err != nil {
		app.handleDecodeError(w, r, err)
		return
	}

	set, err := colors.Convert(rep, text)
	if err != nil {
		app.handleColorError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// GET /v1/colors/random
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	hsv := models.HSV{
		H: float64(rand.Intn(360)),
		S: float64(rand.Intn(101)),
		V: float64(rand.Intn(101)),
	}
	writeJSON(w, http.StatusOK, colors.Describe(hsv))
}

// GET /v1/colors/named?name=steelblue
func (app *Application) getNamedColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		app.badRequest(w, r, errors.New("name is required"))
		return
	}

	rgb, err := colors.ParseNamed(name)
	if err != nil {
		app.colorNameNotFound(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, colors.Describe(colors.RGBToHSV(rgb)))
}

func (app *Application) handleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, models.ErrUnknownRepresentation) {
		app.badRequest(w, r, err)
		return
	}
	app.badJSONRequest(w, r, err)
}
