package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/request"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

type ClientService interface {
	CreateClient(ctx context.Context, client domain.Client) (domain.Client, error)
	UpsertClient(ctx context.Context, client domain.Client) (domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (domain.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (domain.Client, error)
}

type ClientHandler struct {
	svc ClientService
}

func NewClientHandler(svc ClientService) *ClientHandler {
	return &ClientHandler{
		svc: svc,
	}
}

func clientFromRequest(req request.ClientRequest) domain.Client {
	return domain.Client{
		FullName:  req.FullName,
		DocType:   domain.DocType(req.DocType),
		DocNumber: req.DocNumber,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

// HandleCreateClient godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request   body      request.ClientRequest true "request body"
// @Success      201      {object}   domain.Client
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /clients [post]
// @Security     BearerAuth
func (h *ClientHandler) HandleCreateClient(ctx *gin.Context) {
	var req request.ClientRequest
	if !bindJSON(ctx, &req) {
		return
	}

	client, err := h.svc.CreateClient(ctx.Request.Context(), clientFromRequest(req))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateClient -> h.svc.CreateClient", err)
		return
	}

	ctx.JSON(http.StatusCreated, client)
}

// HandleUpsertClient godoc
// @Summary      Create or update a client by document
// @Description  Looks the client up by document type and number, updating it when found.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request   body      request.ClientRequest true "request body"
// @Success      200      {object}   domain.Client
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /clients/upsert [post]
// @Security     BearerAuth
func (h *ClientHandler) HandleUpsertClient(ctx *gin.Context) {
	var req request.ClientRequest
	if !bindJSON(ctx, &req) {
		return
	}

	client, err := h.svc.UpsertClient(ctx.Request.Context(), clientFromRequest(req))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpsertClient -> h.svc.UpsertClient", err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}

// HandleListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   domain.Client
// @Failure      500  {object}  response.Err
// @Router       /clients [get]
// @Security     BearerAuth
func (h *ClientHandler) HandleListClients(ctx *gin.Context) {
	clients, err := h.svc.ListClients(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListClients -> h.svc.ListClients", err)
		return
	}

	ctx.JSON(http.StatusOK, clients)
}

// HandleGetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        clientID  path      string  true  "Client ID"
// @Success      200  {object}  domain.Client
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /clients/{clientID} [get]
// @Security     BearerAuth
func (h *ClientHandler) HandleGetClient(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "clientID")
	if !ok {
		return
	}

	client, err := h.svc.GetClient(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetClient -> h.svc.GetClient", err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}

// HandleUpdateClient godoc
// @Summary      Update a client
// @Description  The document of a client cannot change.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        clientID  path      string  true  "Client ID"
// @Param        request   body      request.UpdateClientRequest true "request body"
// @Success      200  {object}  domain.Client
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /clients/{clientID} [put]
// @Security     BearerAuth
func (h *ClientHandler) HandleUpdateClient(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "clientID")
	if !ok {
		return
	}

	var req request.UpdateClientRequest
	if !bindJSON(ctx, &req) {
		return
	}

	client, err := h.svc.UpdateClient(ctx.Request.Context(), id, domain.ClientPatch{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateClient -> h.svc.UpdateClient", err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}
