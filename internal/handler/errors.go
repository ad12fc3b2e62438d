package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/connectik/connectik_api/internal/utils"
)

const (
	msgInvalidData   = "Données invalides"
	msgInternalError = "Erreur interne du serveur"
)

var conflictMessages = map[string]string{
	"slug":     "Ce slug est déjà utilisé",
	"sku":      "Ce SKU est déjà utilisé",
	"username": "Ce nom d'utilisateur est déjà utilisé",
}

// respondError maps service errors to HTTP responses. Unexpected errors are
// logged and answered with fallback, never with the error text.
func respondError(c *gin.Context, err error, notFound, fallback string) {
	var verr *utils.ValidationError
	var cerr *utils.ConstraintError

	switch {
	case errors.As(err, &verr):
		utils.ValidationFailed(c, msgInvalidData, verr.Fields)
	case errors.As(err, &cerr):
		msg, ok := conflictMessages[cerr.Field]
		if !ok {
			msg = "Cette valeur est déjà utilisée"
		}
		c.JSON(http.StatusConflict, utils.ErrorBody{
			Message: msg,
			Code:    utils.ErrConflict.Error(),
			Errors:  []utils.FieldError{{Field: cerr.Field, Message: msg}},
		})
	case errors.Is(err, utils.ErrNotFound):
		utils.Error(c, http.StatusNotFound, utils.ErrNotFound.Error(), notFound)
	default:
		log.Error().
			Err(err).
			Str("request_id", utils.RequestID(c)).
			Str("path", c.FullPath()).
			Msg("Request failed")
		if fallback == "" {
			fallback = msgInternalError
		}
		utils.Message(c, http.StatusInternalServerError, fallback)
	}
}

// bind decodes the JSON body into obj and answers 400 on failure.
func bind(c *gin.Context, obj interface{}) bool {
	if err := utils.BindJSON(c, obj); err != nil {
		respondError(c, err, "", "")
		return false
	}
	return true
}
