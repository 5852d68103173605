package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/errors"
	"github.com/plotplan/plotplan/pkg/observability"
	"github.com/plotplan/plotplan/pkg/pipeline"
	"github.com/plotplan/plotplan/pkg/plan"
	"github.com/plotplan/plotplan/pkg/session"
)

// exportFilename is the fixed download name for exported images.
const exportFilename = "floor_plan"

// =============================================================================
// Request / Response Types
// =============================================================================

type sessionResponse struct {
	ID        string     `json:"id"`
	State     plan.State `json:"state"`
	CreatedAt string     `json:"created_at"`
	ExpiresAt string     `json:"expires_at"`
}

type createSessionRequest struct {
	Plot *catalog.Size `json:"plot,omitempty"`
}

type plotRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

type addRoomRequest struct {
	Type   string  `json:"type"`
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`

	// Optional preference overrides; nil keeps the rule defaults.
	AttachedWashroom *bool `json:"attached_washroom,omitempty"`
	Open             *bool `json:"open,omitempty"`
	Inside           *bool `json:"inside,omitempty"`
	Combined         *bool `json:"combined,omitempty"`
}

type addRoomResponse struct {
	Added []plan.Room `json:"added"`
	State plan.State  `json:"state"`
}

type removeRoomResponse struct {
	Removed int        `json:"removed"`
	State   plan.State `json:"state"`
}

type catalogEntry struct {
	Type        catalog.RoomType    `json:"type"`
	DisplayName string              `json:"display_name"`
	Direction   catalog.Direction   `json:"direction"`
	Size        catalog.Size        `json:"size"`
	Description string              `json:"description,omitempty"`
	Defaults    catalog.Preferences `json:"defaults"`
	Flags       []catalog.Flag      `json:"flags,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// =============================================================================
// Catalog
// =============================================================================

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	types := s.cat.Selectable()
	entries := make([]catalogEntry, 0, len(types))
	for _, t := range types {
		rule, err := s.cat.Lookup(t)
		if err != nil {
			continue
		}
		entries = append(entries, catalogEntry{
			Type:        t,
			DisplayName: t.DisplayName(),
			Direction:   rule.Direction,
			Size:        rule.Size,
			Description: rule.Description,
			Defaults:    rule.Defaults,
			Flags:       rule.Flags,
		})
	}
	respondJSON(w, http.StatusOK, entries)
}

// =============================================================================
// Sessions
// =============================================================================

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
			return
		}
	}

	p := plan.New(s.cat)
	if req.Plot != nil {
		p.SetPlot(*req.Plot)
	}

	sess := session.New(p.State(), s.ttl)
	if err := s.store.Set(r.Context(), sess); err != nil {
		respondError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}
	observability.Session().OnSessionCreate(r.Context(), "server")

	respondJSON(w, http.StatusCreated, toSessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := s.store.Delete(r.Context(), id); err != nil {
		respondError(w, errors.Wrap(errors.ErrCodeInternal, err, "delete session"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Plot
// =============================================================================

func (s *Server) handleGetPlot(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.State.Plot)
}

// handleSetPlot changes the plot dimensions. Existing room positions are
// kept as-is; only rooms added afterwards see the new plot.
func (s *Server) handleSetPlot(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req plotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}

	p := plan.Restore(s.cat, sess.State)
	p.SetPlot(catalog.Size{Length: req.Length, Width: req.Width})
	sess.State = p.State()

	if err := s.store.Set(r.Context(), sess); err != nil {
		respondError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}
	respondJSON(w, http.StatusOK, sess.State)
}

// =============================================================================
// Rooms
// =============================================================================

func (s *Server) handleAddRoom(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req addRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}

	p := plan.Restore(s.cat, sess.State)
	if err := p.SelectType(catalog.RoomType(req.Type)); err != nil {
		respondError(w, err)
		return
	}

	// Selecting the type reset the draft to rule defaults; apply overrides.
	draft := p.Draft()
	size := draft.Size
	if req.Length > 0 {
		size.Length = req.Length
	}
	if req.Width > 0 {
		size.Width = req.Width
	}
	p.SetDraftSize(size)

	prefs := draft.Preferences
	if req.AttachedWashroom != nil {
		prefs.AttachedWashroom = *req.AttachedWashroom
	}
	if req.Open != nil {
		prefs.Open = *req.Open
	}
	if req.Inside != nil {
		prefs.Inside = *req.Inside
	}
	if req.Combined != nil {
		prefs.Combined = *req.Combined
	}
	p.SetDraftPreferences(prefs)

	added, err := p.AddRoom()
	if err != nil {
		respondError(w, err)
		return
	}

	sess.State = p.State()
	if err := s.store.Set(r.Context(), sess); err != nil {
		respondError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}

	respondJSON(w, http.StatusCreated, addRoomResponse{Added: added, State: sess.State})
}

func (s *Server) handleRemoveRoom(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		respondError(w, err)
		return
	}

	roomID := chi.URLParam(r, "roomID")
	p := plan.Restore(s.cat, sess.State)
	removed := p.RemoveRoom(roomID)
	if removed == 0 {
		respondError(w, errors.New(errors.ErrCodeRoomNotFound, "no room matches id %q", roomID))
		return
	}

	sess.State = p.State()
	if err := s.store.Set(r.Context(), sess); err != nil {
		respondError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}

	respondJSON(w, http.StatusOK, removeRoomResponse{Removed: removed, State: sess.State})
}

// =============================================================================
// Render
// =============================================================================

var renderContentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		respondError(w, err)
		return
	}

	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		respondError(w, errors.New(errors.ErrCodeInvalidFormat, "%v", err))
		return
	}

	if viz := r.URL.Query().Get("viz"); viz != "" {
		if err := pipeline.ValidateVizType(viz); err != nil {
			respondError(w, errors.New(errors.ErrCodeInvalidVizType, "%v", err))
			return
		}
	}
	if style := r.URL.Query().Get("style"); style != "" {
		if err := pipeline.ValidateStyle(style); err != nil {
			respondError(w, errors.New(errors.ErrCodeInvalidStyle, "%v", err))
			return
		}
	}

	opts := pipeline.Options{
		State:       &sess.State,
		VizType:     r.URL.Query().Get("viz"),
		Style:       r.URL.Query().Get("style"),
		Formats:     []string{format},
		Interactive: format == pipeline.FormatSVG && r.URL.Query().Get("interactive") != "false",
		Catalog:     s.cat,
		Logger:      s.logger,
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.logger.Error("render failed",
			"session", sess.ID,
			"format", format,
			"error", err)
		respondError(w, errors.Wrap(errors.ErrCodeRender, err, "render %s", format))
		return
	}

	data := result.Artifacts[format]
	w.Header().Set("Content-Type", renderContentTypes[format])
	if format == pipeline.FormatPNG || format == pipeline.FormatPDF {
		// Image exports download under a fixed name.
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", exportFilename+"."+format))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Helpers
// =============================================================================

// loadSession fetches the request's session or returns a coded error.
func (s *Server) loadSession(r *http.Request) (*session.Session, error) {
	id := chi.URLParam(r, "sessionID")
	if id == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing session id")
	}

	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load session")
	}
	observability.Session().OnSessionLoad(r.Context(), "server", sess != nil)
	if sess == nil {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	return sess, nil
}

func toSessionResponse(sess *session.Session) sessionResponse {
	return sessionResponse{
		ID:        sess.ID,
		State:     sess.State,
		CreatedAt: sess.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		ExpiresAt: sess.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidVizType, errors.ErrCodeUnknownRoomType, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeSessionNotFound,
		errors.ErrCodeRoomNotFound:
		return http.StatusNotFound
	case errors.ErrCodeSessionExpired:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	respondJSON(w, statusForCode(code), errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(code),
	})
}
