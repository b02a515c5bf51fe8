package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/request"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, patch domain.EmployeePatch) (domain.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error)
}

type ProviderService interface {
	CreateProvider(ctx context.Context, provider domain.Provider) (domain.Provider, error)
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	GetProvider(ctx context.Context, id uuid.UUID) (domain.Provider, error)
	UpdateProvider(ctx context.Context, id uuid.UUID, patch domain.ProviderPatch) (domain.Provider, error)
	DeleteProvider(ctx context.Context, id uuid.UUID) (domain.Provider, error)
}

type StaffHandler struct {
	employees EmployeeService
	providers ProviderService
}

func NewStaffHandler(employees EmployeeService, providers ProviderService) *StaffHandler {
	return &StaffHandler{
		employees: employees,
		providers: providers,
	}
}

func recordStatus(status *string) *domain.RecordStatus {
	if status == nil {
		return nil
	}

	s := domain.RecordStatus(*status)
	return &s
}

// HandleCreateEmployee godoc
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateEmployeeRequest true "request body"
// @Success      201      {object}   domain.Employee
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /employees [post]
// @Security     BearerAuth
func (h *StaffHandler) HandleCreateEmployee(ctx *gin.Context) {
	var req request.CreateEmployeeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	hireDate, err := time.Parse(request.DateLayout, req.HireDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hire date: %w", err)))
		return
	}

	employee, err := h.employees.CreateEmployee(ctx.Request.Context(), domain.Employee{
		FullName: req.FullName,
		Position: req.Position,
		Email:    req.Email,
		Phone:    req.Phone,
		HireDate: hireDate,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateEmployee -> h.employees.CreateEmployee", err)
		return
	}

	ctx.JSON(http.StatusCreated, employee)
}

// HandleListEmployees godoc
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}   domain.Employee
// @Failure      500  {object}  response.Err
// @Router       /employees [get]
// @Security     BearerAuth
func (h *StaffHandler) HandleListEmployees(ctx *gin.Context) {
	employees, err := h.employees.ListEmployees(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListEmployees -> h.employees.ListEmployees", err)
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

// HandleGetEmployee godoc
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        employeeID  path      string  true  "Employee ID"
// @Success      200  {object}  domain.Employee
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /employees/{employeeID} [get]
// @Security     BearerAuth
func (h *StaffHandler) HandleGetEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "employeeID")
	if !ok {
		return
	}

	employee, err := h.employees.GetEmployee(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetEmployee -> h.employees.GetEmployee", err)
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// HandleUpdateEmployee godoc
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        employeeID  path      string  true  "Employee ID"
// @Param        request     body      request.UpdateEmployeeRequest true "request body"
// @Success      200  {object}  domain.Employee
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /employees/{employeeID} [put]
// @Security     BearerAuth
func (h *StaffHandler) HandleUpdateEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "employeeID")
	if !ok {
		return
	}

	var req request.UpdateEmployeeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	employee, err := h.employees.UpdateEmployee(ctx.Request.Context(), id, domain.EmployeePatch{
		FullName: req.FullName,
		Position: req.Position,
		Phone:    req.Phone,
		Status:   recordStatus(req.Status),
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateEmployee -> h.employees.UpdateEmployee", err)
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// HandleDeleteEmployee godoc
// @Summary      Deactivate an employee
// @Description  Employees are never removed, their status becomes INACTIVE.
// @Tags         employees
// @Produce      json
// @Param        employeeID  path      string  true  "Employee ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /employees/{employeeID} [delete]
// @Security     BearerAuth
func (h *StaffHandler) HandleDeleteEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "employeeID")
	if !ok {
		return
	}

	if _, err := h.employees.DeleteEmployee(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteEmployee -> h.employees.DeleteEmployee", err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "employee deactivated"})
}

// HandleCreateProvider godoc
// @Summary      Create a provider
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateProviderRequest true "request body"
// @Success      201      {object}   domain.Provider
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /providers [post]
// @Security     BearerAuth
func (h *StaffHandler) HandleCreateProvider(ctx *gin.Context) {
	var req request.CreateProviderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	provider, err := h.providers.CreateProvider(ctx.Request.Context(), domain.Provider{
		CompanyName: req.CompanyName,
		ServiceType: req.ServiceType,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateProvider -> h.providers.CreateProvider", err)
		return
	}

	ctx.JSON(http.StatusCreated, provider)
}

// HandleListProviders godoc
// @Summary      List providers
// @Tags         providers
// @Produce      json
// @Success      200  {array}   domain.Provider
// @Failure      500  {object}  response.Err
// @Router       /providers [get]
// @Security     BearerAuth
func (h *StaffHandler) HandleListProviders(ctx *gin.Context) {
	providers, err := h.providers.ListProviders(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListProviders -> h.providers.ListProviders", err)
		return
	}

	ctx.JSON(http.StatusOK, providers)
}

// HandleGetProvider godoc
// @Summary      Get a provider
// @Tags         providers
// @Produce      json
// @Param        providerID  path      string  true  "Provider ID"
// @Success      200  {object}  domain.Provider
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /providers/{providerID} [get]
// @Security     BearerAuth
func (h *StaffHandler) HandleGetProvider(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "providerID")
	if !ok {
		return
	}

	provider, err := h.providers.GetProvider(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetProvider -> h.providers.GetProvider", err)
		return
	}

	ctx.JSON(http.StatusOK, provider)
}

// HandleUpdateProvider godoc
// @Summary      Update a provider
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        providerID  path      string  true  "Provider ID"
// @Param        request     body      request.UpdateProviderRequest true "request body"
// @Success      200  {object}  domain.Provider
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /providers/{providerID} [put]
// @Security     BearerAuth
func (h *StaffHandler) HandleUpdateProvider(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "providerID")
	if !ok {
		return
	}

	var req request.UpdateProviderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	provider, err := h.providers.UpdateProvider(ctx.Request.Context(), id, domain.ProviderPatch{
		CompanyName: req.CompanyName,
		ServiceType: req.ServiceType,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      recordStatus(req.Status),
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateProvider -> h.providers.UpdateProvider", err)
		return
	}

	ctx.JSON(http.StatusOK, provider)
}

// HandleDeleteProvider godoc
// @Summary      Deactivate a provider
// @Tags         providers
// @Produce      json
// @Param        providerID  path      string  true  "Provider ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /providers/{providerID} [delete]
// @Security     BearerAuth
func (h *StaffHandler) HandleDeleteProvider(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "providerID")
	if !ok {
		return
	}

	if _, err := h.providers.DeleteProvider(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteProvider -> h.providers.DeleteProvider", err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "provider deactivated"})
}
