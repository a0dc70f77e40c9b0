package escpos

import (
	"fmt"
	"strings"

	"pizzaria-backend/internal/domain"
)

const divider = "--------------------------------"

// FormatBRL renders integer cents as a Brazilian currency string.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}

// Receipt encodes a kitchen/counter ticket for the given order. A fresh
// Encoder is created per call, so the stream always starts with ESC @.
func Receipt(order *domain.Order, pizzeriaName string) []byte {
	if strings.TrimSpace(pizzeriaName) == "" {
		pizzeriaName = "PIZZARIA"
	}

	e := New().
		Codepage().
		Align(AlignCenter).
		Bold(true).
		Line(pizzeriaName).
		Bold(false).
		Line(divider).
		Align(AlignLeft).
		Line(fmt.Sprintf("PEDIDO: #%d", order.OrderNumber)).
		Line("CLIENTE: " + order.CustomerName).
		Line("TEL: " + order.CustomerPhone).
		Line(divider).
		Bold(true).
		Line("ITENS:").
		Bold(false)

	for _, item := range order.Items {
		e.Line(fmt.Sprintf("- %dx %s", item.Quantity, item.ProductName)).
			Line(fmt.Sprintf("  Tam: %s | %s", item.SizeName, FormatBRL(item.UnitPriceCents)))
		if item.SecondFlavorName != "" {
			e.Line("  + 1/2 " + item.SecondFlavorName)
		}
		if item.Observation != "" {
			e.Bold(true).Line("  OBS: " + item.Observation).Bold(false)
		}
		e.Line("")
	}

	e.Line(divider).
		Align(AlignRight).
		Bold(true).
		Line("TOTAL: " + FormatBRL(order.TotalCents)).
		Bold(false).
		Align(AlignCenter).
		Line(divider).
		Line(order.DeliveryAddress).
		Line("").
		Line(strings.ToUpper(order.PaymentMethod))

	return e.Encode()
}
