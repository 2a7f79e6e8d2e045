package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookapp-backend/internal/domains/book"
	"bookapp-backend/internal/shared/middleware"
	"bookapp-backend/internal/shared/response"
)

// BookHandler translates HTTP requests into book service calls and results
// into flash messages + redirects, matching the browser-facing flows.
type BookHandler struct {
	service book.Service
}

// NewBookHandler wires the book service.
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Index - GET /
func (h *BookHandler) Index(c *gin.Context) {
	h.list(c, "")
}

// Reading - GET /reading
func (h *BookHandler) Reading(c *gin.Context) {
	h.list(c, book.StatusReadingNow)
}

// WantToRead - GET /want_to_read
func (h *BookHandler) WantToRead(c *gin.Context) {
	h.list(c, book.StatusWantToRead)
}

// Finished - GET /finished
func (h *BookHandler) Finished(c *gin.Context) {
	h.list(c, book.StatusFinished)
}

func (h *BookHandler) list(c *gin.Context, status string) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Redirect(c, middleware.LoginPath)
		return
	}

	books, err := h.service.ListByStatus(c.Request.Context(), userID, status)
	if err != nil {
		log.Error().Err(err).Msg("list books failed")
		response.InternalServerError(c, "Could not load your books. Please try again.")
		return
	}

	response.View(c, http.StatusOK, gin.H{"books": books, "status": status})
}

// ShowCreate - GET /create
func (h *BookHandler) ShowCreate(c *gin.Context) {
	response.View(c, http.StatusOK, gin.H{
		"page":     "create",
		"covers":   book.Covers(),
		"statuses": book.Statuses(),
	})
}

// Create - POST /create
func (h *BookHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Redirect(c, middleware.LoginPath)
		return
	}

	var form book.BookForm
	if err := c.ShouldBind(&form); err != nil {
		response.FormError(c, "Invalid form submission", err.Error())
		return
	}

	_, err := h.service.Create(c.Request.Context(), userID, form)
	if h.handleBookError(c, err, "add") {
		return
	}

	response.RedirectWithFlash(c, "/", response.FlashSuccess, "Book added successfully!")
}

// Detail - GET /book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Redirect(c, middleware.LoginPath)
		return
	}

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RedirectWithFlash(c, "/", response.FlashError, "Book not found")
		return
	}

	b, err := h.service.Get(c.Request.Context(), bookID, userID)
	if h.handleBookError(c, err, "view") {
		return
	}

	response.View(c, http.StatusOK, gin.H{"book": b})
}

// ShowEdit - GET /edit/:id
func (h *BookHandler) ShowEdit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Redirect(c, middleware.LoginPath)
		return
	}

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RedirectWithFlash(c, "/", response.FlashError, "Book not found")
		return
	}

	b, err := h.service.Get(c.Request.Context(), bookID, userID)
	if h.handleBookError(c, err, "edit") {
		return
	}

	response.View(c, http.StatusOK, gin.H{
		"page":     "edit",
		"book":     b,
		"covers":   book.Covers(),
		"statuses": book.Statuses(),
	})
}

// Edit - POST /edit/:id
func (h *BookHandler) Edit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Redirect(c, middleware.LoginPath)
		return
	}

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RedirectWithFlash(c, "/", response.FlashError, "Book not found")
		return
	}

	var form book.BookForm
	if err := c.ShouldBind(&form); err != nil {
		response.FormError(c, "Invalid form submission", err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), bookID, userID, form)
	if h.handleBookError(c, err, "edit") {
		return
	}

	response.RedirectWithFlash(c, "/book/"+b.ID.String(),
		response.FlashSuccess, "Book updated successfully!")
}

// Delete - POST /delete/:id
func (h *BookHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Redirect(c, middleware.LoginPath)
		return
	}

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RedirectWithFlash(c, "/", response.FlashError, "Book not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), bookID, userID); h.handleBookError(c, err, "delete") {
		return
	}

	response.RedirectWithFlash(c, "/", response.FlashSuccess, "Book deleted successfully!")
}

// handleBookError maps service errors onto the browser-facing result:
// validation problems re-render the form, missing books and foreign books
// soft-redirect home with a flash. Returns true when the error was handled.
func (h *BookHandler) handleBookError(c *gin.Context, err error, action string) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.RedirectWithFlash(c, "/", response.FlashError, "Book not found")

	case errors.Is(err, book.ErrNotOwner):
		response.RedirectWithFlash(c, "/", response.FlashError,
			"Not authorized to "+action+" this book")

	case isValidationError(err):
		response.FormError(c, err.Error(), err)

	case errors.Is(err, book.ErrOwnerNotFound):
		log.Error().Err(err).Msg("book write for missing owner")
		response.InternalServerError(c, "Something went wrong. Please try again.")

	default:
		log.Error().Err(err).Str("action", action).Msg("book operation failed")
		response.InternalServerError(c, "Something went wrong. Please try again.")
	}

	return true
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
