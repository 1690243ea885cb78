package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
	"github.com/karthikbhat/invoice-hub-service/internal/model"
)

// Client-facing messages. 500s stay generic; internal error text is only
// ever logged server-side.
const (
	msgInvalidJSON   = "Invalid JSON body"
	msgDatabaseError = "Database error"
	msgServerError   = "Server error"
)

// respondWithError sends the shared error envelope.
func respondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, model.ErrorResponse{Success: false, Message: message})
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, message)
}

// respondOK sends a 200 OK response with data.
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// respondDomainError maps a service error to an HTTP response. Validation,
// conflict and not-found messages pass through to the client; persistence
// and unexpected errors are logged with endpoint context and reported with
// a generic message.
func respondDomainError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		respondWithError(c, http.StatusBadRequest, domainMessage(err))
	case domain.KindConflict:
		respondWithError(c, http.StatusConflict, domainMessage(err))
	case domain.KindNotFound:
		respondWithError(c, http.StatusNotFound, domainMessage(err))
	case domain.KindConnectivity, domain.KindPersistence:
		logError(c, err)
		respondWithError(c, http.StatusInternalServerError, msgDatabaseError)
	default:
		logError(c, err)
		respondWithError(c, http.StatusInternalServerError, msgServerError)
	}
}

// domainMessage extracts the client-safe message from a domain error.
func domainMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// logError logs err with the endpoint that produced it.
func logError(c *gin.Context, err error) {
	log.Printf("%s %s error: %v", c.Request.Method, c.Request.URL.Path, err)
}
