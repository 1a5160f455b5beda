package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"moodiary/internal/core"
	"moodiary/internal/http/handler/middleware"
	"moodiary/internal/http/payload"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	SignUp      = "POST /diary/signup"
	Login       = "POST /diary/login"
	ListEntries = "GET /diary/entries"
	CreateEntry = "POST /diary/entries"
	DeleteEntry = "DELETE /diary/entries/{id}"
	FetchImage  = "GET /diary/images/{id}"
)

type DiaryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	diary            DiaryService
	maxUploadBytes   int64
}

func NewDiaryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, diaryService DiaryService, maxUploadBytes int64) *DiaryHandler {
	return &DiaryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		diary:            diaryService,
		maxUploadBytes:   maxUploadBytes,
	}
}

func (h *DiaryHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not sign up",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SignUp,
			"request_id", requestId)
		return
	}

	result, err := h.diary.SignUp(r.Context(), payload.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrDuplicateUsername) {
			h.respond(w, Response{
				Message: "Could not sign up",
				Error:   err.Error(),
			}, http.StatusConflict,
				requestId)
			h.logs.Infow("signup with a taken username",
				"username", payload.Username,
				"handler", SignUp,
				"request_id", requestId)
			return
		}

		h.internalError(w, err, SignUp, requestId)
		return
	}

	h.logs.Infow("user signed up",
		"user_id", result.User.ID,
		"handler", SignUp,
		"request_id", requestId)

	h.respond(w, result, http.StatusCreated, requestId)
}

func (h *DiaryHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	result, err := h.diary.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrAuthFailure) {
			h.respond(w, Response{
				Message: "Login failed",
				Error:   err.Error(),
			}, http.StatusUnauthorized,
				requestId)
			h.logs.Infow("login rejected",
				"username", payload.Username,
				"handler", Login,
				"request_id", requestId)
			return
		}

		h.internalError(w, err, Login, requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *DiaryHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	requester, ok := h.requester(w, r, ListEntries, requestId)
	if !ok {
		return
	}

	entries, err := h.diary.ListEntries(r.Context(), requester)
	if err != nil {
		h.internalError(w, err, ListEntries, requestId)
		return
	}

	resp := map[string][]core.EntryRecord{
		"entries": entries,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *DiaryHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	requester, ok := h.requester(w, r, CreateEntry, requestId)
	if !ok {
		return
	}

	form, err := payload.ParseEntryForm(w, r, h.maxUploadBytes)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, payload.ErrUploadTooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		h.respond(w, Response{
			Message: "Could not create entry",
			Error:   err.Error(),
		}, code,
			requestId)
		h.logs.Errorw("failed to parse entry form",
			"error", err,
			"handler", CreateEntry,
			"request_id", requestId)
		return
	}

	if err := form.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not create entry",
			Error:   fmt.Errorf("validate entry: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate entry form",
			"error", err,
			"handler", CreateEntry,
			"request_id", requestId)
		return
	}

	entry, err := h.diary.CreateEntry(r.Context(), requester, form.ToMessage())
	if err != nil {
		h.internalError(w, err, CreateEntry, requestId)
		return
	}

	h.respond(w, entry, http.StatusCreated, requestId)
}

func (h *DiaryHandler) HandleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	requester, ok := h.requester(w, r, DeleteEntry, requestId)
	if !ok {
		return
	}

	entryID, ok := h.pathID(w, r, DeleteEntry, requestId)
	if !ok {
		return
	}

	if err := h.diary.DeleteEntry(r.Context(), requester, entryID); err != nil {
		h.ownershipError(w, err, DeleteEntry, requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DiaryHandler) HandleFetchImage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	requester, ok := h.requester(w, r, FetchImage, requestId)
	if !ok {
		return
	}

	imageID, ok := h.pathID(w, r, FetchImage, requestId)
	if !ok {
		return
	}

	image, err := h.diary.FetchImage(r.Context(), requester, imageID)
	if err != nil {
		h.ownershipError(w, err, FetchImage, requestId)
		return
	}

	mimetype := image.Mimetype
	if mimetype == "" {
		mimetype = "application/octet-stream"
	}

	w.Header().Set("Content-Type", mimetype)
	w.Header().Set("Content-Length", strconv.Itoa(len(image.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image.Data); err != nil {
		h.logs.Errorw("failed to write image",
			"error", err,
			"handler", FetchImage,
			"request_id", requestId)
	}
}

func (h *DiaryHandler) requester(w http.ResponseWriter, r *http.Request, handler, requestId string) (uint, bool) {
	requester, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		h.respond(w, Response{
			Message: "Authentication required",
			Error:   "no authenticated user",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("request reached handler without a user",
			"handler", handler,
			"request_id", requestId)
		return 0, false
	}

	return requester, true
}

// pathID reads the {id} route variable. Anything that is not a positive integer
// cannot name a stored row and is reported as not found.
func (h *DiaryHandler) pathID(w http.ResponseWriter, r *http.Request, handler, requestId string) (uint, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   core.ErrNotFound.Error(),
		}, http.StatusNotFound,
			requestId)
		h.logs.Infow("invalid id in path",
			"id", raw,
			"handler", handler,
			"request_id", requestId)
		return 0, false
	}

	return uint(id), true
}

func (h *DiaryHandler) ownershipError(w http.ResponseWriter, err error, handler, requestId string) {
	var code int
	switch {
	case errors.Is(err, core.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, core.ErrUnauthorized):
		code = http.StatusForbidden
	default:
		h.internalError(w, err, handler, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Request failed",
		Error:   err.Error(),
	}, code,
		requestId)
	h.logs.Infow("request refused",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *DiaryHandler) internalError(w http.ResponseWriter, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: "Request failed",
		Error:   oopsErr,
	}, http.StatusInternalServerError,
		requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *DiaryHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
