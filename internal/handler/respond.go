package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/internal/service"
)

// fixed error-code vocabulary; raw error text stays in the server log
const (
	codeNotFound     = "not_found"
	codeValidation   = "validation_failed"
	codeUnauthorized = "unauthorized"
	codeForbidden    = "forbidden"
	codeConflict     = "conflict"
	codeInternal     = "internal"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondError(ctx *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, errorBody{Error: codeNotFound})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrCapacityExceeded):
		ctx.JSON(http.StatusBadRequest, errorBody{Error: codeValidation})
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: codeUnauthorized})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, errorBody{Error: codeForbidden})
	case errors.Is(err, service.ErrConflict):
		ctx.JSON(http.StatusConflict, errorBody{Error: codeConflict})
	default:
		logger.Error("handler failure",
			zap.String("path", ctx.FullPath()),
			zap.String("method", ctx.Request.Method),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, errorBody{Error: codeInternal})
	}
}

func respondBadRequest(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, errorBody{Error: codeValidation})
}

// bindStrict decodes the JSON body rejecting unknown fields, then runs the
// binding tags. Payloads either match the declared struct exactly or fail.
func bindStrict(ctx *gin.Context, dst any) error {
	dec := json.NewDecoder(ctx.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if binding.Validator == nil {
		return nil
	}
	return binding.Validator.ValidateStruct(dst)
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(ctx)
		return 0, false
	}
	return uint(id), true
}
