package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolify/internal/domain"
	"schoolify/internal/validate"
)

const msgServerError = "Erreur serveur"

// respondError maps a service error onto the response. Unknown errors are
// logged with the request id and reported as a generic 500.
func (h *Handler) respondError(c *gin.Context, err error, notFoundMsg string) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		abortMessage(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, domain.ErrValidation):
		abortMessage(c, http.StatusBadRequest, "Requête invalide")
	case errors.Is(err, domain.ErrConflict):
		abortMessage(c, http.StatusBadRequest, "Cet utilisateur existe déjà")
	case errors.Is(err, domain.ErrInvalidCredentials):
		abortMessage(c, http.StatusBadRequest, "Identifiants invalides")
	case errors.Is(err, domain.ErrUnauthorized):
		abortMessage(c, http.StatusUnauthorized, "Non autorisé")
	case errors.Is(err, domain.ErrForbidden):
		abortMessage(c, http.StatusForbidden, "Non autorisé")
	case errors.Is(err, domain.ErrNotFound):
		abortMessage(c, http.StatusNotFound, notFoundMsg)
	default:
		h.logger.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error("unhandled error")
		abortMessage(c, http.StatusInternalServerError, msgServerError)
	}
}

func abortMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

func badBody(c *gin.Context) {
	abortMessage(c, http.StatusBadRequest, "Corps de requête invalide")
}
