package handlers

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/yetkinlik/internal/logger"
	"github.com/sbilibin2017/yetkinlik/internal/models"
	"github.com/sbilibin2017/yetkinlik/internal/services"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Backend details stay in the log, the page only gets these.
const (
	loadFailedMessage = "Failed to load CVs. Please try again later."
	saveFailedMessage = "Failed to save CV. Please try again later."
)

// loadState reads everything the page shows. A failed list query is surfaced in the state.
func loadState(ctx context.Context, lister CVLister, checker StatusChecker) models.PageState {
	state := models.PageState{
		Connected: checker.Check(ctx).Connected(),
	}

	cvs, err := lister.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list cvs for page", "err", err)
		state.Error = loadFailedMessage
		return state
	}
	state.CVs = cvs

	return state
}

func renderPage(w http.ResponseWriter, status int, state models.PageState) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, state); err != nil {
		logger.Log.Errorw("failed to render page", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NewPageHandler returns an HTTP handler rendering the CV page.
func NewPageHandler(lister CVLister, checker StatusChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := loadState(r.Context(), lister, checker)
		if r.URL.Query().Get("created") != "" {
			state.Notice = "CV saved."
		}

		renderPage(w, http.StatusOK, state)
	}
}

// NewSubmitFormHandler returns an HTTP handler for the CV form.
// A successful submission redirects back to the page so the list is read again.
func NewSubmitFormHandler(creator CVCreator, lister CVLister, checker StatusChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			state := loadState(r.Context(), lister, checker)
			state.Error = "Invalid form submission"
			renderPage(w, http.StatusBadRequest, state)
			return
		}

		email := r.PostFormValue("email")
		data := r.PostFormValue("data")

		cv, err := creator.Create(r.Context(), email, []byte(data))
		if err != nil {
			status := http.StatusBadRequest
			message := ""
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				message = "Please enter a valid email address."
			case errors.Is(err, services.ErrInvalidPayload):
				message = "Data must be valid JSON."
			default:
				logger.Log.Errorw("failed to submit cv", "err", err)
				status = http.StatusInternalServerError
				message = saveFailedMessage
			}

			state := loadState(r.Context(), lister, checker)
			state.Error = message
			state.Email = email
			state.Data = data
			renderPage(w, status, state)
			return
		}

		http.Redirect(w, r, "/?created="+url.QueryEscape(cv.ID.String()), http.StatusSeeOther)
	}
}
