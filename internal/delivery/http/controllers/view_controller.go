package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventroster/internal/delivery/http/helpers"
	"eventroster/internal/delivery/http/middleware"
	"eventroster/internal/domain"
)

// maxSearchTermLength bounds the search box input.
const maxSearchTermLength = 200

// OpenViewRequest is the request body for POST /views.
type OpenViewRequest struct {
	EventID string `json:"event_id"`
}

// Validate implements Validator.
func (o OpenViewRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(o.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

// ChangeEventRequest is the request body for PUT /views/{viewID}/event.
type ChangeEventRequest struct {
	EventID string `json:"event_id"`
}

// Validate implements Validator.
func (c ChangeEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

// SetSearchRequest is the request body for PUT /views/{viewID}/search.
type SetSearchRequest struct {
	Term string `json:"term"`
}

// Validate implements Validator.
func (s SetSearchRequest) Validate() []string {
	var errs []string
	if len(s.Term) > maxSearchTermLength {
		errs = append(errs, "term must be at most 200 characters")
	}
	return errs
}

// ViewResponse is a view session and its current state. NavigateTo is set when the view asked
// the client to move elsewhere, such as the event list after a cancellation.
type ViewResponse struct {
	ViewID     string           `json:"view_id"`
	State      domain.ViewState `json:"state"`
	NavigateTo string           `json:"navigate_to,omitempty"`
}

// ViewSuccessResponse is the success response envelope for the /views endpoints.
type ViewSuccessResponse struct {
	Data  ViewResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ViewController struct {
	Logger   *slog.Logger
	Sessions domain.ViewSessionService
}

func NewViewController(logger *slog.Logger, sessions domain.ViewSessionService) *ViewController {
	return &ViewController{
		Logger:   logger,
		Sessions: sessions,
	}
}

// OpenView godoc
// @Summary Open an event detail view
// @Description Opens a view session for the authenticated viewer and loads the event and its roster. A failed event lookup still creates the view; its state carries the error screen.
// @Tags views
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OpenViewRequest true "Event to show"
// @Success 201 {object} controllers.ViewSuccessResponse "data contains the view id and state"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /views [post]
func (c *ViewController) OpenView(w http.ResponseWriter, r *http.Request) {
	var req OpenViewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	viewer, ok := middleware.ViewerFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	session, state, err := c.Sessions.Open(r.Context(), viewer, strings.TrimSpace(req.EventID))
	if err != nil && session == nil {
		c.writeError(w, r, err)
		return
	}
	if err != nil {
		c.Logger.InfoContext(r.Context(), "view opened with failed load", "view_id", session.ID, "err", err)
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, c.response(session, state))
}

// GetView godoc
// @Summary Get the current view state
// @Tags views
// @Produce json
// @Security BearerAuth
// @Param viewID path string true "View ID"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view state"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [get]
func (c *ViewController) GetView(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.response(session, session.View.State()))
}

// ChangeEvent godoc
// @Summary Show a different event in an open view
// @Description Reloads the view for a new event identifier. Results of earlier loads are discarded.
// @Tags views
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param viewID path string true "View ID"
// @Param body body ChangeEventRequest true "Event to show"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view state"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID}/event [put]
func (c *ViewController) ChangeEvent(w http.ResponseWriter, r *http.Request) {
	var req ChangeEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	state, err := session.View.Load(r.Context(), strings.TrimSpace(req.EventID))
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrStaleLoad):
		// A newer load owns the view; report whatever it has shown so far.
		state = session.View.State()
	default:
		c.Logger.InfoContext(r.Context(), "view load failed", "view_id", session.ID, "err", err)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.response(session, state))
}

// SetSearch godoc
// @Summary Filter the roster by username
// @Description Case-insensitive substring filter on participant usernames. Does not refetch data.
// @Tags views
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param viewID path string true "View ID"
// @Param body body SetSearchRequest true "Search term"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view state"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID}/search [put]
func (c *ViewController) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req SetSearchRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.response(session, session.View.SetSearchTerm(req.Term)))
}

// ClearSearch godoc
// @Summary Clear the roster filter
// @Tags views
// @Produce json
// @Security BearerAuth
// @Param viewID path string true "View ID"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view state"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID}/search [delete]
func (c *ViewController) ClearSearch(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.response(session, session.View.ClearSearchTerm()))
}

// CancelInscription godoc
// @Summary Cancel an inscription shown in the view
// @Description Deletes the inscription upstream, removes it from the roster and sets navigate_to to the event list. On upstream failure the roster is unchanged and the state carries a retryable banner.
// @Tags views
// @Produce json
// @Security BearerAuth
// @Param viewID path string true "View ID"
// @Param inscriptionID path string true "Inscription ID"
// @Success 200 {object} controllers.ViewSuccessResponse "data contains the view state and navigate_to"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} controllers.ViewSuccessResponse "error.code: bad_gateway, data contains the unchanged view state"
// @Router /views/{viewID}/inscriptions/{inscriptionID} [delete]
func (c *ViewController) CancelInscription(w http.ResponseWriter, r *http.Request) {
	inscriptionID := strings.TrimSpace(r.PathValue("inscriptionID"))
	if inscriptionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing inscriptionID")
		return
	}
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	state, err := session.View.Cancel(r.Context(), domain.InscriptionID(inscriptionID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotInRoster):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "inscription not in roster")
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONErrorWithData(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, "cancellation failed", c.response(session, state))
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.response(session, state))
}

// CloseView godoc
// @Summary Close a view
// @Description Discards the view session and abandons any load still in flight.
// @Tags views
// @Security BearerAuth
// @Param viewID path string true "View ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [delete]
func (c *ViewController) CloseView(w http.ResponseWriter, r *http.Request) {
	viewID := r.PathValue("viewID")
	if viewID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing viewID")
		return
	}
	viewer, ok := middleware.ViewerFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Sessions.Close(viewer, viewID); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// session resolves the viewID path value to a session owned by the authenticated viewer. It
// writes the error response and returns false when that fails.
func (c *ViewController) session(w http.ResponseWriter, r *http.Request) (*domain.ViewSession, bool) {
	viewID := r.PathValue("viewID")
	if viewID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing viewID")
		return nil, false
	}
	viewer, ok := middleware.ViewerFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	session, err := c.Sessions.Get(viewer, viewID)
	if err != nil {
		c.writeError(w, r, err)
		return nil, false
	}
	return session, true
}

func (c *ViewController) response(session *domain.ViewSession, state domain.ViewState) ViewResponse {
	resp := ViewResponse{ViewID: session.ID, State: state}
	if session.TakeNavigation != nil {
		if to, ok := session.TakeNavigation(); ok {
			resp.NavigateTo = to
		}
	}
	return resp
}

func (c *ViewController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrViewNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
