// Package notify builds the customer-facing status messages and delivers
// them over a best-effort outbound channel. Formatting is pure; sending is
// fire-and-forget from the order workflow's point of view.
package notify

import (
	"fmt"
	"net/url"
	"strings"
)

// FormatAcceptance is sent when the operator accepts a pending order. The
// tracking URL lets the customer follow the order in real time.
func FormatAcceptance(orderNumber int64, pizzeriaName, customerName, trackingURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ *PEDIDO #%d ACEITO!*\n\n", orderNumber)
	fmt.Fprintf(&b, "Olá, %s! Já estamos preparando seu pedido com muito carinho aqui na *%s*.\n\n", customerName, pizzeriaName)
	b.WriteString("📍 *ACOMPANHE O STATUS EM TEMPO REAL:*\n")
	b.WriteString(trackingURL)
	b.WriteString("\n\nVocê poderá ver cada etapa, desde a cozinha até a chegada do entregador! 🛵🔥")
	return b.String()
}

// FormatDispatch is sent when the order leaves for delivery.
func FormatDispatch(orderNumber int64, customerName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Boas notícias, %s! 🛵💨\n\n", customerName)
	fmt.Fprintf(&b, "Seu pedido *#%d* acabou de sair para entrega.\nFique atento à campainha ou interfone!", orderNumber)
	return b.String()
}

// FormatDelivered closes the loop once the courier hands the order over.
func FormatDelivered() string {
	return "Pedido Entregue! ✅\n\nEsperamos que goste da sua pizza. Obrigado pela preferência e até a próxima! 😋"
}

// FormatCancellation is sent when the operator cancels the order.
func FormatCancellation(orderNumber int64, customerName, reason string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❌ *PEDIDO #%d CANCELADO*\n\n", orderNumber)
	fmt.Fprintf(&b, "Olá %s.\n\nInfelizmente seu pedido precisou ser cancelado pelo restaurante.\n\n", customerName)
	fmt.Fprintf(&b, "*Motivo:* %s\n\n", reason)
	b.WriteString("Pedimos desculpas pelo inconveniente. Se tiver dúvidas, pode nos chamar por aqui.")
	return b.String()
}

// WhatsAppLink builds a wa.me deep link for a Brazilian phone number. Every
// non-digit is stripped and the 55 country prefix added when missing.
func WhatsAppLink(phone, text string) string {
	digits := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	number := string(digits)
	if !strings.HasPrefix(number, "55") {
		number = "55" + number
	}
	// QueryEscape encodes spaces as "+", which wa.me renders literally.
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
