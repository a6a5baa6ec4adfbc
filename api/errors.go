package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")
var ErrPOST = fmt.Errorf("POST method required for this endpoint")
var ErrPUT = fmt.Errorf("PUT method required for this endpoint")
var ErrDELETE = fmt.Errorf("DELETE method required for this endpoint")

func writeError(w http.ResponseWriter, status int, handlerErr HandlerError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(handlerErr)
}

func (app *Application) invalidSession(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating Session",
		Description:      err.Error(),
		PossibleSolution: "Start a new picker session with POST /v1/sessions",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) sessionNotFound(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Session Not Found",
		Description:      err.Error(),
		PossibleSolution: "Start a new picker session with POST /v1/sessions",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requireMethod(w http.ResponseWriter, r *http.Request, method string, err error) {
	w.Header().Set("Allow", method)
	writeError(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        method + " Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use " + method + " method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) colorMismatch(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusUnprocessableEntity, HandlerError{
		ErrorName:        "Color Not Recognised",
		Description:      err.Error(),
		PossibleSolution: "Use a form like #ff00aa, rgb(255, 0, 170), hsl(320deg, 100%, 50%), hsv(320deg, 100%, 100%) or cmyk(0%, 100%, 33%, 0%)",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) colorNameNotFound(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Color Name Not Found",
		Description:      err.Error(),
		PossibleSolution: "Use an SVG color keyword such as steelblue",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}
