package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/request"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

type PackageService interface {
	CreatePackage(ctx context.Context, pkg domain.TourPackage) (domain.TourPackage, error)
	ListPackages(ctx context.Context) ([]domain.TourPackage, error)
	GetPackage(ctx context.Context, id uuid.UUID) (domain.TourPackage, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, patch domain.TourPackagePatch) (domain.TourPackage, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
}

type PackageHandler struct {
	svc PackageService
}

func NewPackageHandler(svc PackageService) *PackageHandler {
	return &PackageHandler{
		svc: svc,
	}
}

// HandleCreatePackage godoc
// @Summary      Create a tour package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreatePackageRequest true "request body"
// @Success      201      {object}   domain.TourPackage
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /packages [post]
// @Security     BearerAuth
func (h *PackageHandler) HandleCreatePackage(ctx *gin.Context) {
	var req request.CreatePackageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	pkg, err := h.svc.CreatePackage(ctx.Request.Context(), domain.TourPackage{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		MaxPax:       req.MaxPax,
		Destinations: req.Destinations,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreatePackage -> h.svc.CreatePackage", err)
		return
	}

	ctx.JSON(http.StatusCreated, pkg)
}

// HandleListPackages godoc
// @Summary      List tour packages
// @Tags         packages
// @Produce      json
// @Success      200  {array}   domain.TourPackage
// @Failure      500  {object}  response.Err
// @Router       /packages [get]
// @Security     BearerAuth
func (h *PackageHandler) HandleListPackages(ctx *gin.Context) {
	packages, err := h.svc.ListPackages(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListPackages -> h.svc.ListPackages", err)
		return
	}

	ctx.JSON(http.StatusOK, packages)
}

// HandleGetPackage godoc
// @Summary      Get a tour package
// @Tags         packages
// @Produce      json
// @Param        packageID  path      string  true  "Package ID"
// @Success      200  {object}  domain.TourPackage
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /packages/{packageID} [get]
// @Security     BearerAuth
func (h *PackageHandler) HandleGetPackage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "packageID")
	if !ok {
		return
	}

	pkg, err := h.svc.GetPackage(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetPackage -> h.svc.GetPackage", err)
		return
	}

	ctx.JSON(http.StatusOK, pkg)
}

// HandleUpdatePackage godoc
// @Summary      Update a tour package
// @Description  Omitted fields keep their stored value.
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        packageID  path      string  true  "Package ID"
// @Param        request    body      request.UpdatePackageRequest true "request body"
// @Success      200  {object}  domain.TourPackage
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /packages/{packageID} [put]
// @Security     BearerAuth
func (h *PackageHandler) HandleUpdatePackage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "packageID")
	if !ok {
		return
	}

	var req request.UpdatePackageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	patch := domain.TourPackagePatch{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		MaxPax:       req.MaxPax,
	}
	if req.Destinations != nil {
		patch.Destinations = append([]string{}, *req.Destinations...)
	}

	pkg, err := h.svc.UpdatePackage(ctx.Request.Context(), id, patch)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdatePackage -> h.svc.UpdatePackage", err)
		return
	}

	ctx.JSON(http.StatusOK, pkg)
}

// HandleDeletePackage godoc
// @Summary      Delete a tour package
// @Description  Packages referenced by reservations cannot be deleted.
// @Tags         packages
// @Produce      json
// @Param        packageID  path      string  true  "Package ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /packages/{packageID} [delete]
// @Security     BearerAuth
func (h *PackageHandler) HandleDeletePackage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "packageID")
	if !ok {
		return
	}

	if err := h.svc.DeletePackage(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeletePackage -> h.svc.DeletePackage", err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "package deleted"})
}
