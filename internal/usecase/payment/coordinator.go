package payment

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/audit"
	"github.com/udayanalone/BarberConnect/internal/authz"
	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
	gw "github.com/udayanalone/BarberConnect/internal/payment"
)

// Coordinator mediates the two-step simulated payment protocol against an
// existing appointment. Amounts are stored in currency units and converted
// to minor units only at this boundary.
type Coordinator struct {
	repo     domain.Repository
	gateway  gw.Gateway
	verifier gw.SignatureVerifier
	audit    *audit.Dispatcher
	log      *zap.Logger
	currency string
}

func NewCoordinator(
	repo domain.Repository,
	gateway gw.Gateway,
	verifier gw.SignatureVerifier,
	auditor *audit.Dispatcher,
	log *zap.Logger,
	currency string,
) *Coordinator {
	return &Coordinator{
		repo:     repo,
		gateway:  gateway,
		verifier: verifier,
		audit:    auditor,
		log:      log.With(zap.String("service", "payment")),
		currency: currency,
	}
}

type OrderResponse struct {
	OrderID       string `json:"order_id"`
	Amount        int64  `json:"amount"` // minor units
	Currency      string `json:"currency"`
	AppointmentID uint   `json:"appointment_id"`
}

type VerifyInput struct {
	AppointmentID uint
	OrderID       string
	PaymentID     string
	Signature     string
}

type StatusResponse struct {
	PaymentStatus string  `json:"payment_status"`
	PaymentID     string  `json:"payment_id,omitempty"`
	TotalAmount   float64 `json:"total_amount"`
}

// loadPayable fetches the appointment and checks the caller may pay for it.
func (co *Coordinator) loadPayable(
	ctx context.Context,
	actor authz.Principal,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := co.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAppointment(actor, ap, authz.ActionPay); err != nil {
		return nil, err
	}

	if ap.PaymentStatus != string(domain.PaymentPending) {
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyPaid)
	}

	return ap, nil
}

func (co *Coordinator) CreateOrder(
	ctx context.Context,
	actor authz.Principal,
	appointmentID uint,
) (*OrderResponse, error) {

	ap, err := co.loadPayable(ctx, actor, appointmentID)
	if err != nil {
		return nil, err
	}

	order, err := co.gateway.CreateOrder(
		ctx,
		toMinorUnits(ap.TotalAmount),
		co.currency,
		fmt.Sprintf("appointment_%d", ap.ID),
	)
	if err != nil {
		return nil, err
	}

	co.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionPaymentOrderCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"order_id": order.ID, "amount": order.Amount},
	})

	return &OrderResponse{
		OrderID:       order.ID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		AppointmentID: ap.ID,
	}, nil
}

func (co *Coordinator) Verify(
	ctx context.Context,
	actor authz.Principal,
	in VerifyInput,
) (*models.Appointment, error) {

	ap, err := co.loadPayable(ctx, actor, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !co.verifier.Verify(in.OrderID, in.PaymentID, in.Signature) {
		co.log.Warn("payment verification failed",
			zap.Uint("appointment_id", ap.ID),
			zap.String("order_id", in.OrderID),
		)
		return nil, httperr.ErrBusiness(httperr.CodeVerificationFailed)
	}

	ap.PaymentStatus = string(domain.PaymentPaid)
	ap.PaymentID = in.PaymentID

	if err := co.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	co.log.Info("payment verified",
		zap.Uint("appointment_id", ap.ID),
		zap.String("payment_id", in.PaymentID),
	)

	co.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionPaymentVerified,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// Simulate marks the appointment paid without verification. Demo/test flow
// only; never mounted in production deployments.
func (co *Coordinator) Simulate(
	ctx context.Context,
	actor authz.Principal,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := co.loadPayable(ctx, actor, appointmentID)
	if err != nil {
		return nil, err
	}

	ap.PaymentStatus = string(domain.PaymentPaid)
	ap.PaymentID = gw.SimulatedPaymentID()

	if err := co.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	co.log.Info("payment simulated", zap.Uint("appointment_id", ap.ID))

	co.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionPaymentSimulated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (co *Coordinator) Status(
	ctx context.Context,
	actor authz.Principal,
	appointmentID uint,
) (*StatusResponse, error) {

	ap, err := co.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAppointment(actor, ap, authz.ActionView); err != nil {
		return nil, err
	}

	return &StatusResponse{
		PaymentStatus: ap.PaymentStatus,
		PaymentID:     ap.PaymentID,
		TotalAmount:   ap.TotalAmount,
	}, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
