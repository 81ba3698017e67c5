package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/middleware"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/orderstate"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/logging"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

var errTrailingData = errors.New("unexpected data after the request body")

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbiddenRequest = pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context(), nil).Error("[http][handler] request failed",
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor writes 401 and returns false when no authenticated caller is on the context.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		respondError(c, errUnauthenticated)
		return entities.Actor{}, false
	}
	return actor, true
}

// bindJSON decodes strictly: unknown keys, trailing data and failed binding tags all give 400.
func bindJSON(c *gin.Context, payload any) bool {
	if err := decodeStrict(c.Request.Body, payload); err != nil {
		respondError(c, errInvalidPayload)
		return false
	}
	if err := binding.Validator.ValidateStruct(payload); err != nil {
		respondError(c, errInvalidPayload)
		return false
	}
	return true
}

func decodeStrict(body io.Reader, payload any) error {
	if body == nil {
		return io.EOF
	}
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(payload); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

// bindOptionalJSON accepts an empty body for endpoints whose payload is optional.
func bindOptionalJSON(c *gin.Context, payload any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, payload)
}

// mapSharedError covers errors every resource can produce. ok is false when err is not one of them.
func mapSharedError(err error) (*pkg.AppError, bool) {
	var transition *orderstate.TransitionError
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		return errForbiddenRequest, true
	case errors.As(err, &transition):
		msg := fmt.Sprintf("Order cannot move from %s to %s", transition.From, transition.To)
		return pkg.NewDomainError("INVALID_TRANSITION", msg, err, http.StatusBadRequest), true
	case errors.Is(err, orderstate.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Invalid status transition", err, http.StatusBadRequest), true
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "The request timed out, try again", err, http.StatusGatewayTimeout), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
