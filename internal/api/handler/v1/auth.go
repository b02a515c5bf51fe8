package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/request"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
	"github.com/muhu-travel/backoffice-api/internal/api/middleware"
	"github.com/muhu-travel/backoffice-api/internal/config"
	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/pkg/jwthelper"
	"github.com/muhu-travel/backoffice-api/internal/service"
)

var errNoIdentity = errors.New("request is not authenticated")

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, in service.RegisterInput) (domain.User, error)
	Profile(ctx context.Context, id uuid.UUID) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleLogin -> h.svc.Login", err)
		return
	}

	h.renderSession(ctx, http.StatusOK, user)
}

// HandleRegister godoc
// @Summary      Register a new agent
// @Description  Creates an AGENT account. The password of an active administrator is required.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), service.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRegister -> h.svc.Register", err)
		return
	}

	h.renderSession(ctx, http.StatusCreated, user)
}

// HandleProfile godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200      {object}   domain.User
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/profile [get]
// @Security     BearerAuth
func (h *AuthHandler) HandleProfile(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthenticated(errNoIdentity))
		return
	}

	user, err := h.svc.Profile(ctx.Request.Context(), identity.UserID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleProfile -> h.svc.Profile", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandlePermissions godoc
// @Summary      List the actions the authenticated role may perform
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.PermissionsResponse
// @Failure      401      {object}   response.Err
// @Router       /auth/permissions [get]
// @Security     BearerAuth
func (h *AuthHandler) HandlePermissions(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthenticated(errNoIdentity))
		return
	}

	ctx.JSON(http.StatusOK, response.PermissionsResponse{
		Role:        identity.Role,
		Permissions: access.Matrix(identity.Role),
	})
}

func (h *AuthHandler) renderSession(ctx *gin.Context, status int, user domain.User) {
	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, h.conf.JWTExpiry)
	if err != nil {
		err = fmt.Errorf("v1.renderSession -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(status, response.LoginResponse{
		Token: token,
		User:  user,
	})
}
