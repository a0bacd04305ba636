package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/service"
)

// BookHandler handles the books resource endpoints.
type BookHandler struct {
	bookService service.BookService
	logger      *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookService service.BookService, logger *slog.Logger) *BookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookHandler{
		bookService: bookService,
		logger:      logger.With(slog.String("component", "book_handler")),
	}
}

// Routes mounts the five book operations on r. Authentication is applied by the caller.
func (h *BookHandler) Routes(r chi.Router) {
	r.Get("/", h.ListBooks)
	r.Post("/", h.CreateBook)
	r.Get("/{id}", h.GetBook)
	r.Put("/{id}", h.UpdateBook)
	r.Delete("/{id}", h.DeleteBook)
}

// ListBooks handles GET /books
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, booksWithAuthorToResponse(books))
}

// CreateBook handles POST /books
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeBookRequest(w, r)
	if !ok {
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), req.toInput())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("book created via API", slog.Int64("book_id", book.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, bookToResponse(book))
}

// GetBook handles GET /books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithText(w, r, http.StatusNotFound, msgBookNotFound)
		return
	}

	book, err := h.bookService.GetBook(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookWithAuthorToResponse(book))
}

// UpdateBook handles PUT /books/{id}
// The body replaces every field of the book.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithText(w, r, http.StatusNotFound, msgBookNotFound)
		return
	}

	req, ok := h.decodeBookRequest(w, r)
	if !ok {
		return
	}

	book, err := h.bookService.UpdateBook(r.Context(), id, req.toInput())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("book updated via API", slog.Int64("book_id", book.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, bookToResponse(book))
}

// DeleteBook handles DELETE /books/{id}
// It responds with the deleted book's last values.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithText(w, r, http.StatusNotFound, msgBookNotFound)
		return
	}

	book, err := h.bookService.DeleteBook(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookToResponse(book))
}

// decodeBookRequest reads and validates the body. On failure it writes the
// 400 validation report and returns false.
func (h *BookHandler) decodeBookRequest(w http.ResponseWriter, r *http.Request) (*BookRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	fields, err := shared.DecodeObject(r)
	if err != nil {
		log.Debug("failed to decode book request", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusBadRequest, decodeErrorReport(err).Body())
		return nil, false
	}

	req, report := parseBookRequest(fields)
	if report != nil {
		log.Debug("book request failed validation", slog.Int("field_errors", len(report.FieldErrors)))
		shared.RespondWithJSON(w, r, http.StatusBadRequest, report.Body())
		return nil, false
	}
	return req, true
}
