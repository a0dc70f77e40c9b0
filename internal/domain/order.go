package domain

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCanceled   OrderStatus = "canceled"
)

// CancelReasons are the preset cancellation causes offered to the operator.
// CancelReasonOther requires accompanying free text.
var CancelReasons = []string{
	"Cliente desistiu do pedido",
	"Endereço fora da área de entrega",
	"Sem entregador disponível no momento",
	"Ingredientes em falta",
	"Pedido suspeito / Trote",
	CancelReasonOther,
}

const CancelReasonOther = "Outros"

// PricedLine is a cart line after server-side pricing. Unit price comes from
// the catalog; for split-flavor lines it is the higher of the two halves'
// prices at the chosen size. Immutable once the order is created.
type PricedLine struct {
	ProductID        string `json:"productId"`
	ProductName      string `json:"productName"`
	SizeName         string `json:"sizeName"`
	Quantity         int    `json:"quantity"`
	SecondFlavorID   string `json:"secondFlavorId,omitempty"`
	SecondFlavorName string `json:"secondFlavorName,omitempty"`
	Observation      string `json:"observation,omitempty"`
	UnitPriceCents   int64  `json:"unitPriceCents"`
	LineTotalCents   int64  `json:"lineTotalCents"`
}

// Order is created in StatusPending and afterwards only mutated by status
// transitions. Items and amounts are frozen at creation; TotalCents always
// equals the sum of line totals plus the delivery fee.
type Order struct {
	ID                 string       `json:"id"`
	PizzeriaID         string       `json:"-"`
	OrderNumber        int64        `json:"orderNumber"`
	Status             OrderStatus  `json:"status"`
	CustomerName       string       `json:"customerName"`
	CustomerPhone      string       `json:"customerPhone"`
	DeliveryAddress    string       `json:"deliveryAddress"`
	PaymentMethod      string       `json:"paymentMethod"`
	ChangeForCents     int64        `json:"changeForCents,omitempty"`
	Items              []PricedLine `json:"items"`
	DeliveryFeeCents   int64        `json:"deliveryFeeCents"`
	TotalCents         int64        `json:"totalCents"`
	CancellationReason string       `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
}

// nextStatus is the single forward step of the happy path.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:    StatusPreparing,
	StatusPreparing:  StatusDelivering,
	StatusDelivering: StatusDelivered,
}

// NextStatus returns the forward transition from the given status, or
// ErrInvalidTransition when the status is terminal or unknown.
func NextStatus(from OrderStatus) (OrderStatus, error) {
	to, ok := nextStatus[from]
	if !ok {
		return "", ErrInvalidTransition
	}
	return to, nil
}

// CanTransition reports whether from -> to is a legal status change.
// Cancellation is legal from any non-terminal state; everything else must
// follow the linear pending -> preparing -> delivering -> delivered path.
func CanTransition(from, to OrderStatus) bool {
	if to == StatusCanceled {
		return from == StatusPending || from == StatusPreparing || from == StatusDelivering
	}
	return nextStatus[from] == to
}

// ResolveCancelReason validates the operator's reason selection and returns
// the final reason text. Choosing CancelReasonOther requires non-blank free
// text; the free text replaces the preset label.
func ResolveCancelReason(selected, freeText string) (string, error) {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return "", ErrMissingCancellationReason
	}
	if selected != CancelReasonOther {
		return selected, nil
	}
	freeText = strings.TrimSpace(freeText)
	if freeText == "" {
		return "", ErrMissingCancellationReason
	}
	return freeText, nil
}

// Terminal reports whether no transitions leave the status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}
