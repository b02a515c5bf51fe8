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
	"github.com/muhu-travel/backoffice-api/internal/service"
)

type ReservationService interface {
	Create(ctx context.Context, in service.CreateReservationInput) (domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (domain.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationPublisher receives an event after every successful reservation write.
type ReservationPublisher interface {
	Publish(event domain.ReservationEvent)
}

type ReservationHandler struct {
	svc       ReservationService
	publisher ReservationPublisher
}

func NewReservationHandler(svc ReservationService, publisher ReservationPublisher) *ReservationHandler {
	return &ReservationHandler{
		svc:       svc,
		publisher: publisher,
	}
}

func (h *ReservationHandler) publish(eventType domain.ReservationEventType, reservation domain.Reservation) {
	if h.publisher == nil {
		return
	}

	h.publisher.Publish(domain.ReservationEvent{
		Type:            eventType,
		ReservationID:   reservation.ID,
		ReservationCode: reservation.ReservationCode,
		Status:          reservation.Status,
		OccurredAt:      time.Now().UTC(),
	})
}

func reservationInputFromRequest(req request.CreateReservationRequest) (service.CreateReservationInput, error) {
	in := service.CreateReservationInput{
		AdultCount:    req.AdultCount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		CouponCode:    req.CouponCode,
	}

	var err error
	if in.PackageID, err = uuid.Parse(req.PackageID); err != nil {
		return in, fmt.Errorf("invalid packageId: %w", err)
	}
	if req.ClientID != "" {
		if in.ClientID, err = uuid.Parse(req.ClientID); err != nil {
			return in, fmt.Errorf("invalid clientId: %w", err)
		}
	}
	if req.Billing != nil {
		billing := clientFromRequest(*req.Billing)
		in.Billing = &billing
	}
	if in.TravelDate, err = time.Parse(request.DateLayout, req.TravelDate); err != nil {
		return in, fmt.Errorf("invalid travelDate: %w", err)
	}

	in.Passengers = make([]domain.Passenger, 0, len(req.Passengers))
	for i, p := range req.Passengers {
		passenger := domain.Passenger{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Nationality: p.Nationality,
			DocType:     domain.DocType(p.DocType),
			DocNumber:   p.DocNumber,
			Gender:      domain.Gender(p.Gender),
		}
		if p.BirthDate != "" {
			if passenger.BirthDate, err = time.Parse(request.DateLayout, p.BirthDate); err != nil {
				return in, fmt.Errorf("invalid passengers[%d].birthDate: %w", i, err)
			}
		}
		in.Passengers = append(in.Passengers, passenger)
	}

	return in, nil
}

// HandleCreateReservation godoc
// @Summary      Create a reservation
// @Description  Stores the reservation with its passengers. Billing details are upserted as a client by document.
// @Description  The total is computed from the package price and any totalAmount sent is ignored.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateReservationRequest true "request body"
// @Success      201      {object}   domain.Reservation
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reservations [post]
// @Security     BearerAuth
func (h *ReservationHandler) HandleCreateReservation(ctx *gin.Context) {
	var req request.CreateReservationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	in, err := reservationInputFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservation, err := h.svc.Create(ctx.Request.Context(), in)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateReservation -> h.svc.Create", err)
		return
	}

	h.publish(domain.ReservationCreated, reservation)
	ctx.JSON(http.StatusCreated, reservation)
}

// HandleListReservations godoc
// @Summary      List reservations
// @Description  Newest first, with package, client and passengers.
// @Tags         reservations
// @Produce      json
// @Success      200  {array}   domain.Reservation
// @Failure      500  {object}  response.Err
// @Router       /reservations [get]
// @Security     BearerAuth
func (h *ReservationHandler) HandleListReservations(ctx *gin.Context) {
	reservations, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListReservations -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleGetReservation godoc
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Param        reservationID  path      string  true  "Reservation ID"
// @Success      200  {object}  domain.Reservation
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reservations/{reservationID} [get]
// @Security     BearerAuth
func (h *ReservationHandler) HandleGetReservation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "reservationID")
	if !ok {
		return
	}

	reservation, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetReservation -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, reservation)
}

// HandleUpdateReservation godoc
// @Summary      Change the status of a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        reservationID  path      string  true  "Reservation ID"
// @Param        request        body      request.UpdateReservationRequest true "request body"
// @Success      200  {object}  domain.Reservation
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reservations/{reservationID} [put]
// @Security     BearerAuth
func (h *ReservationHandler) HandleUpdateReservation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "reservationID")
	if !ok {
		return
	}

	var req request.UpdateReservationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	reservation, err := h.svc.UpdateStatus(ctx.Request.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateReservation -> h.svc.UpdateStatus", err)
		return
	}

	h.publish(domain.ReservationUpdated, reservation)
	ctx.JSON(http.StatusOK, reservation)
}

// HandleDeleteReservation godoc
// @Summary      Delete a reservation
// @Description  Removes the reservation and its passengers. The billing client is kept.
// @Tags         reservations
// @Produce      json
// @Param        reservationID  path      string  true  "Reservation ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reservations/{reservationID} [delete]
// @Security     BearerAuth
func (h *ReservationHandler) HandleDeleteReservation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "reservationID")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteReservation -> h.svc.Delete", err)
		return
	}

	h.publish(domain.ReservationDeleted, domain.Reservation{ID: id})
	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "reservation deleted"})
}
