package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
	"github.com/muhu-travel/backoffice-api/internal/service"
)

type validatable interface {
	Validate() error
}

// bindJSON decodes the body into req and validates it. On failure the error
// has already been rendered and the caller must return.
func bindJSON(ctx *gin.Context, req validatable) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	return true
}

func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %s: %w", name, err)))
		return uuid.Nil, false
	}

	return id, true
}

// renderServiceErr maps an error returned by a service onto the HTTP error taxonomy.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrInvalidCredentials):
		response.RenderErr(ctx, response.ErrWrongCredentials(err))
	case errors.Is(err, service.ErrAdminAuthorization):
		response.RenderErr(ctx, response.ErrPermissionDenied(err))
	case errors.Is(err, service.ErrNotFound):
		response.RenderErr(ctx, response.ErrResourceNotFound(err))
	case errors.Is(err, service.ErrConflict):
		response.RenderErr(ctx, response.ErrConflict(err))
	case errors.Is(err, service.ErrInUse):
		response.RenderErr(ctx, response.ErrReferentialIntegrity(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200      {object}   response.MessageResponse
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
}
