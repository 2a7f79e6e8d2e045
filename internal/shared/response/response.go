package response

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for GET views. HTML rendering lives outside this
// service, so views expose the data a template would receive, plus any
// pending flash message.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Flash   *Flash      `json:"flash,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Flash is a transient status message shown to the user exactly once.
type Flash struct {
	Level   string `json:"level"` // "success" or "error"
	Message string `json:"message"`
}

const (
	FlashSuccess = "success"
	FlashError   = "error"

	flashCookieName   = "flash"
	flashCookieMaxAge = 300
)

// SetFlash queues a flash message in a short-lived cookie. It survives
// exactly one redirect; the next view pops it.
func SetFlash(c *gin.Context, level, message string) {
	payload, err := json.Marshal(Flash{Level: level, Message: message})
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(payload)
	c.SetCookie(flashCookieName, encoded, flashCookieMaxAge, "/", "", false, true)
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(c *gin.Context) *Flash {
	encoded, err := c.Cookie(flashCookieName)
	if err != nil || encoded == "" {
		return nil
	}

	// Clear regardless of whether it decodes; flash is one-shot.
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(payload, &f); err != nil {
		return nil
	}
	return &f
}

// Redirect issues a 303 so a POST is followed by a GET on the target.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// RedirectWithFlash queues a flash and redirects.
func RedirectWithFlash(c *gin.Context, location, level, message string) {
	SetFlash(c, level, message)
	Redirect(c, location)
}

// View renders a successful GET view, attaching any pending flash.
func View(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Flash:   PopFlash(c),
	})
}

// FormError re-renders a form submission with a validation error. The
// message maps onto what the templates would show as an inline flash.
func FormError(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Success: false,
		Error: &Error{
			Code:    "VALIDATION_ERROR",
			Message: message,
			Details: details,
		},
	})
}

// InternalServerError reports an unclassified storage or system failure.
func InternalServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error: &Error{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: message,
		},
	})
}
