package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookservice/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{id}", h.Get)
	mux.HandleFunc("PUT /books/{id}", h.Edit)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
	mux.HandleFunc("GET /authors/{id}/books", h.ListByAuthor)
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.service.ListBooks(r.Context()), http.StatusOK)
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeResponse(w, h.service.GetBookByID(r.Context(), id), http.StatusOK)
}

// ListByAuthor handles GET /authors/{id}/books
func (h *HTTPHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeResponse(w, h.service.GetBooksByAuthorID(r.Context(), id), http.StatusOK)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResponse(w, h.service.CreateBook(r.Context(), req), http.StatusCreated)
}

// Edit handles PUT /books/{id}. The id in the path wins; a different id in
// the body is rejected.
func (h *HTTPHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req EditBookRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.ID != 0 && req.ID != id {
		httpx.JSONError(w, r, http.StatusBadRequest, "id in body does not match path", nil)
		return
	}
	req.ID = id
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "validation failed", details)
		return
	}
	writeResponse(w, h.service.EditBook(r.Context(), req), http.StatusOK)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeResponse(w, h.service.DeleteBook(r.Context(), id), http.StatusOK)
}

// writeResponse maps an envelope to a status code: failures are 500,
// empty successful results are 404, everything else okStatus.
func writeResponse[T any](w http.ResponseWriter, resp Response[T], okStatus int) {
	status := okStatus
	switch {
	case !resp.Success:
		status = http.StatusInternalServerError
	case resp.NotFound():
		status = http.StatusNotFound
	}
	httpx.JSON(w, status, resp)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeJSON(r, dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "request body too large", nil)
			return false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	if details := httpx.ValidateStruct(dst); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "validation failed", details)
		return false
	}
	return true
}
