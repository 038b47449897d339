package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"artzone/internal/httputil"
	"artzone/internal/model"
	"artzone/internal/service"
	"artzone/internal/transport/http/middleware"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	event, err := h.eventService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			httputil.WriteBadRequest(w, err.Error())
			return
		}
		log.Printf("[ERROR] Create event handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to create event")
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, event)
}

// List handles GET /api/events
// Only future events are returned, soonest first.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListUpcoming(r.Context())
	if err != nil {
		log.Printf("[ERROR] List events handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to list events")
		return
	}

	httputil.WriteList(w, len(events), events)
}

// GetByID handles GET /api/events/:id
// Returns the event with its registration roster.
func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid event ID")
		return
	}

	event, err := h.eventService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			httputil.WriteNotFound(w, "Event not found")
			return
		}
		log.Printf("[ERROR] Get event handler: event=%d err=%v", id, err)
		httputil.WriteInternalError(w, "Failed to get event")
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, event)
}

// Register handles POST /api/events/:id/register
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid event ID")
		return
	}

	event, err := h.eventService.Register(r.Context(), eventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEventNotFound):
			httputil.WriteNotFound(w, "Event not found")
		case errors.Is(err, model.ErrAlreadyRegistered):
			httputil.WriteConflict(w, "Already registered for this event")
		case errors.Is(err, model.ErrEventFull):
			httputil.WriteConflict(w, "Event is full")
		default:
			log.Printf("[ERROR] Register event handler: event=%d user=%d err=%v", eventID, userID, err)
			httputil.WriteInternalError(w, "Failed to register for event")
		}
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Registered successfully", event)
}
