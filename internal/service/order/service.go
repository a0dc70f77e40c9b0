package order

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"pizzaria-backend/internal/domain"
	"pizzaria-backend/internal/escpos"
	"pizzaria-backend/internal/events"
	"pizzaria-backend/internal/notify"
	orderrepo "pizzaria-backend/internal/repository/order"
	"pizzaria-backend/internal/service/pricing"
)

type Service struct {
	repo            orderRepo
	hoursRepo       hoursRepo
	pricer          pricer
	sender          notify.Sender
	publisher       *events.Publisher
	printer         receiptPrinter
	logger          *log.Logger
	trackingBaseURL string
	now             func() time.Time
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, pizzeriaID, id string) (*domain.Order, error)
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, pizzeriaID, id string, expected, next domain.OrderStatus, cancellationReason string) (*domain.Order, error)
}

type hoursRepo interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.OperatingHours, error)
}

type pricer interface {
	PriceOrder(ctx context.Context, pizzeriaID string, lines []domain.CartLine, zoneID string) (*pricing.Quote, error)
}

type receiptPrinter interface {
	Print(ctx context.Context, data []byte) error
}

func New(repo orderRepo, hoursRepo hoursRepo, pricer pricer, sender notify.Sender, publisher *events.Publisher, printer receiptPrinter, logger *log.Logger, trackingBaseURL string) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:            repo,
		hoursRepo:       hoursRepo,
		pricer:          pricer,
		sender:          sender,
		publisher:       publisher,
		printer:         printer,
		logger:          logger,
		trackingBaseURL: strings.TrimRight(trackingBaseURL, "/"),
		now:             time.Now,
	}
}

type CheckoutInput struct {
	CustomerName   string            `json:"customerName"`
	CustomerPhone  string            `json:"customerPhone"`
	Address        string            `json:"address"`
	ZoneID         string            `json:"zoneId"`
	PaymentMethod  string            `json:"paymentMethod"`
	ChangeForCents int64             `json:"changeForCents"`
	Lines          []domain.CartLine `json:"lines"`
}

// Checkout prices the cart server-side and creates the order in pending
// state. The client's displayed total is never consulted.
func (s *Service) Checkout(ctx context.Context, pizzeria *domain.Pizzeria, in CheckoutInput) (*domain.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("customer name required")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, fmt.Errorf("customer phone required")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, fmt.Errorf("payment method required")
	}

	if s.hoursRepo != nil {
		schedule, err := s.hoursRepo.ListByPizzeria(ctx, pizzeria.ID)
		if err != nil {
			return nil, err
		}
		// No schedule configured means always open.
		if len(schedule) > 0 && !domain.OpenAt(schedule, s.now()) {
			return nil, domain.ErrStoreClosed
		}
	}

	quote, err := s.pricer.PriceOrder(ctx, pizzeria.ID, in.Lines, in.ZoneID)
	if err != nil {
		return nil, err
	}

	address := "Retirada no Local"
	if quote.Zone != nil {
		address = strings.TrimSpace(in.Address) + " - " + quote.Zone.NeighborhoodName
	}

	order, err := s.repo.Create(ctx, orderrepo.CreateInput{
		PizzeriaID:       pizzeria.ID,
		CustomerName:     strings.TrimSpace(in.CustomerName),
		CustomerPhone:    strings.TrimSpace(in.CustomerPhone),
		DeliveryAddress:  address,
		PaymentMethod:    in.PaymentMethod,
		ChangeForCents:   in.ChangeForCents,
		Items:            quote.Items,
		DeliveryFeeCents: quote.DeliveryFeeCents,
		TotalCents:       quote.TotalCents,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, order)
	return order, nil
}

func (s *Service) Get(ctx context.Context, pizzeriaID, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, pizzeriaID, id)
}

func (s *Service) List(ctx context.Context, pizzeriaID string) ([]domain.Order, error) {
	return s.repo.ListByPizzeria(ctx, pizzeriaID)
}

// Advance moves the order one step along the happy path. The conditional
// update in the store serializes concurrent operators; whoever loses gets
// domain.ErrConflict. The outbound notification is best-effort and never
// rolls the transition back.
func (s *Service) Advance(ctx context.Context, pizzeria *domain.Pizzeria, orderID string) (*domain.Order, error) {
	current, err := s.repo.GetByID(ctx, pizzeria.ID, orderID)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextStatus(current.Status)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, pizzeria.ID, orderID, current.Status, next, "")
	if err != nil {
		return nil, err
	}

	var text string
	switch updated.Status {
	case domain.StatusPreparing:
		text = notify.FormatAcceptance(updated.OrderNumber, pizzeria.Name, updated.CustomerName, s.trackingURL(pizzeria.Slug, updated.ID))
	case domain.StatusDelivering:
		text = notify.FormatDispatch(updated.OrderNumber, updated.CustomerName)
	case domain.StatusDelivered:
		text = notify.FormatDelivered()
	}
	s.send(ctx, updated, text)
	s.publish(ctx, updated)
	return updated, nil
}

// Cancel moves a non-terminal order to canceled. The reason is mandatory;
// choosing the "Outros" preset requires free text.
func (s *Service) Cancel(ctx context.Context, pizzeria *domain.Pizzeria, orderID, selectedReason, freeText string) (*domain.Order, error) {
	reason, err := domain.ResolveCancelReason(selectedReason, freeText)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, pizzeria.ID, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(current.Status, domain.StatusCanceled) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, pizzeria.ID, orderID, current.Status, domain.StatusCanceled, reason)
	if err != nil {
		return nil, err
	}

	s.send(ctx, updated, notify.FormatCancellation(updated.OrderNumber, updated.CustomerName, reason))
	s.publish(ctx, updated)
	return updated, nil
}

// PrintReceipt encodes the order and streams it to the configured printer.
func (s *Service) PrintReceipt(ctx context.Context, pizzeria *domain.Pizzeria, orderID string) error {
	if s.printer == nil {
		return fmt.Errorf("no printer configured")
	}
	order, err := s.repo.GetByID(ctx, pizzeria.ID, orderID)
	if err != nil {
		return err
	}
	return s.printer.Print(ctx, escpos.Receipt(order, pizzeria.Name))
}

// EncodeReceipt returns the raw ESC/POS stream for the order, for callers
// that drive their own transport (e.g. a browser Bluetooth bridge).
func (s *Service) EncodeReceipt(ctx context.Context, pizzeria *domain.Pizzeria, orderID string) ([]byte, error) {
	order, err := s.repo.GetByID(ctx, pizzeria.ID, orderID)
	if err != nil {
		return nil, err
	}
	return escpos.Receipt(order, pizzeria.Name), nil
}

func (s *Service) trackingURL(slug, orderID string) string {
	return fmt.Sprintf("%s/%s/track/%s", s.trackingBaseURL, slug, orderID)
}

func (s *Service) send(ctx context.Context, order *domain.Order, text string) {
	if s.sender == nil || text == "" {
		return
	}
	if err := s.sender.Send(ctx, order.CustomerPhone, text); err != nil {
		s.logger.Printf("notify customer of order %s: %v", order.ID, err)
	}
}

func (s *Service) publish(ctx context.Context, order *domain.Order) {
	if s.publisher != nil {
		s.publisher.StatusChanged(ctx, order)
	}
}
