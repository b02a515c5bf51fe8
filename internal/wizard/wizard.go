// Package wizard drives the five step reservation flow used by agents:
// package and travellers, passenger details, payment, billing, confirmation.
// A Wizard holds the draft in memory and only talks to the API on Submit.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/request"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

type Step int

const (
	StepPackageSelection Step = iota
	StepPassengerDetails
	StepPayment
	StepBilling
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepPackageSelection:
		return "package selection"
	case StepPassengerDetails:
		return "passenger details"
	case StepPayment:
		return "payment"
	case StepBilling:
		return "billing"
	case StepConfirmation:
		return "confirmation"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrNoPackage           = errors.New("select a tour package")
	ErrAdultCount          = errors.New("at least one adult is required")
	ErrTooManyPassengers   = errors.New("adult count exceeds the package capacity")
	ErrTravelDate          = errors.New("a valid travel date is required")
	ErrIncompletePassenger = errors.New("first name, last name and document number are required for every passenger")
	ErrPaymentMethod       = errors.New("unknown payment method")
	ErrPassengerIndex      = errors.New("passenger index out of range")
	ErrSubmitRequired      = errors.New("the billing step is completed with Submit")
	ErrNoPreviousStep      = errors.New("already at the first step")
	ErrNotAtBilling        = errors.New("the reservation can only be submitted from the billing step")
	ErrSubmitInProgress    = errors.New("a submission is already in progress")
	ErrCompleted           = errors.New("the reservation has already been submitted")
)

// Catalog lists the packages offered in the first step.
type Catalog interface {
	ListPackages(ctx context.Context) ([]domain.TourPackage, error)
}

// Submitter persists the finished draft.
type Submitter interface {
	CreateReservation(ctx context.Context, req request.CreateReservationRequest) (domain.Reservation, error)
}

type Wizard struct {
	submitter Submitter

	mu         sync.Mutex
	step       Step
	packages   []domain.TourPackage
	packageID  string
	travelDate string
	adultCount int
	passengers []request.PassengerRequest
	payment    domain.PaymentMethod
	coupon     string
	billing    request.ClientRequest
	submitting bool
	code       string
}

func New(submitter Submitter) *Wizard {
	return &Wizard{
		submitter:  submitter,
		step:       StepPackageSelection,
		adultCount: 1,
		payment:    domain.PaymentCreditCard,
		billing:    request.ClientRequest{DocType: string(domain.DocTypeDNI)},
	}
}

// LoadPackages fetches the catalog. A failing catalog leaves the wizard with
// no packages to choose from rather than failing the flow.
func (w *Wizard) LoadPackages(ctx context.Context, catalog Catalog) []domain.TourPackage {
	packages, err := catalog.ListPackages(ctx)
	if err != nil {
		zap.L().Warn("failed to load tour packages", zap.Error(err))
		packages = []domain.TourPackage{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.packages = packages

	out := make([]domain.TourPackage, len(packages))
	copy(out, packages)

	return out
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.step
}

func (w *Wizard) SelectPackage(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.packageID = strings.TrimSpace(id)
}

func (w *Wizard) SetTravelDate(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.travelDate = strings.TrimSpace(date)
}

func (w *Wizard) SetAdultCount(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.adultCount = n
}

func (w *Wizard) Passengers() []request.PassengerRequest {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]request.PassengerRequest(nil), w.passengers...)
}

// SetPassenger replaces passenger i. Names are stored upper-cased.
func (w *Wizard) SetPassenger(i int, p request.PassengerRequest) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i < 0 || i >= len(w.passengers) {
		return fmt.Errorf("%w: %d", ErrPassengerIndex, i)
	}

	p.FirstName = strings.ToUpper(strings.TrimSpace(p.FirstName))
	p.LastName = strings.ToUpper(strings.TrimSpace(p.LastName))
	p.DocNumber = strings.TrimSpace(p.DocNumber)
	w.passengers[i] = p

	return nil
}

func (w *Wizard) SetPayment(method domain.PaymentMethod, coupon string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.payment = method
	w.coupon = strings.TrimSpace(coupon)
}

// SetBilling stores the billing party. The full name is stored upper-cased.
func (w *Wizard) SetBilling(billing request.ClientRequest) {
	w.mu.Lock()
	defer w.mu.Unlock()

	billing.FullName = strings.ToUpper(strings.TrimSpace(billing.FullName))
	billing.DocNumber = strings.TrimSpace(billing.DocNumber)
	billing.Email = strings.TrimSpace(billing.Email)
	w.billing = billing
}

func (w *Wizard) Billing() request.ClientRequest {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.billing
}

// EstimatedTotal is the price shown to the agent. The server prices the reservation on its own.
func (w *Wizard) EstimatedTotal() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	pkg, ok := w.selectedPackage()
	if !ok || w.adultCount < 1 {
		return 0
	}

	return math.Round(pkg.Price*float64(w.adultCount)*100) / 100
}

// ReservationCode is empty until Submit succeeds.
func (w *Wizard) ReservationCode() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.code
}

func (w *Wizard) selectedPackage() (domain.TourPackage, bool) {
	for _, p := range w.packages {
		if p.ID.String() == w.packageID {
			return p, true
		}
	}
	return domain.TourPackage{}, false
}

// Next validates the current step and moves forward. Billing is left with Submit.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting {
		return ErrSubmitInProgress
	}

	switch w.step {
	case StepPackageSelection:
		if err := w.checkPackageSelection(); err != nil {
			return err
		}
		w.resizePassengers()
	case StepPassengerDetails:
		if err := w.checkPassengers(); err != nil {
			return err
		}
	case StepPayment:
		if !w.payment.IsValid() {
			return fmt.Errorf("%w: %q", ErrPaymentMethod, w.payment)
		}
	case StepBilling:
		return ErrSubmitRequired
	case StepConfirmation:
		return ErrCompleted
	}

	w.step++

	return nil
}

// Back moves to the previous step keeping every value entered so far.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.submitting:
		return ErrSubmitInProgress
	case w.step == StepConfirmation:
		return ErrCompleted
	case w.step == StepPackageSelection:
		return ErrNoPreviousStep
	}

	w.step--

	return nil
}

func (w *Wizard) checkPackageSelection() error {
	if w.packageID == "" {
		return ErrNoPackage
	}
	if w.adultCount < 1 {
		return ErrAdultCount
	}
	if pkg, ok := w.selectedPackage(); ok && w.adultCount > pkg.MaxPax {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPassengers, w.adultCount, pkg.MaxPax)
	}
	if _, err := time.Parse(request.DateLayout, w.travelDate); err != nil {
		return ErrTravelDate
	}

	return nil
}

// resizePassengers keeps the passengers already entered and fills or trims up to adultCount.
func (w *Wizard) resizePassengers() {
	if len(w.passengers) >= w.adultCount {
		w.passengers = w.passengers[:w.adultCount]
		return
	}

	for len(w.passengers) < w.adultCount {
		w.passengers = append(w.passengers, request.PassengerRequest{
			Nationality: "Peru",
			DocType:     string(domain.DocTypeDNI),
			Gender:      string(domain.GenderMale),
		})
	}
}

func (w *Wizard) checkPassengers() error {
	for i, p := range w.passengers {
		if p.FirstName == "" || p.LastName == "" || p.DocNumber == "" {
			return fmt.Errorf("%w: passenger %d", ErrIncompletePassenger, i+1)
		}
	}

	return nil
}

func (w *Wizard) draft() request.CreateReservationRequest {
	billing := w.billing

	return request.CreateReservationRequest{
		PackageID:     w.packageID,
		Billing:       &billing,
		TravelDate:    w.travelDate,
		AdultCount:    w.adultCount,
		Passengers:    append([]request.PassengerRequest(nil), w.passengers...),
		PaymentMethod: string(w.payment),
		CouponCode:    w.coupon,
	}
}

// Submit sends the draft from the billing step. On success the wizard moves
// to Confirmation and keeps the reservation code. On failure it stays on
// Billing so the agent can correct the data and retry.
func (w *Wizard) Submit(ctx context.Context) (domain.Reservation, error) {
	w.mu.Lock()
	switch {
	case w.submitting:
		w.mu.Unlock()
		return domain.Reservation{}, ErrSubmitInProgress
	case w.step == StepConfirmation:
		w.mu.Unlock()
		return domain.Reservation{}, ErrCompleted
	case w.step != StepBilling:
		w.mu.Unlock()
		return domain.Reservation{}, ErrNotAtBilling
	}

	req := w.draft()
	if err := req.Billing.Validate(); err != nil {
		w.mu.Unlock()
		return domain.Reservation{}, fmt.Errorf("billing: %w", err)
	}
	if err := req.Validate(); err != nil {
		w.mu.Unlock()
		return domain.Reservation{}, err
	}
	w.submitting = true
	w.mu.Unlock()

	reservation, err := w.submitter.CreateReservation(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false
	if err != nil {
		zap.L().Info("reservation submit failed", zap.String("package_id", req.PackageID), zap.Error(err))
		return domain.Reservation{}, fmt.Errorf("w.submitter.CreateReservation -> %w", err)
	}

	w.code = reservation.ReservationCode
	w.step = StepConfirmation

	return reservation, nil
}
