package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Sender delivers a text message to a phone number. Delivery is advisory:
// callers treat errors as log-worthy, never as transaction failures.
type Sender interface {
	Send(ctx context.Context, phone, text string) error
}

// HTTPSender posts messages to a WhatsApp gateway endpoint. The gateway
// owns session/QR handling; this side only hands over number and text.
type HTTPSender struct {
	gatewayURL string
	client     *http.Client
	logger     *log.Logger
}

func NewHTTPSender(gatewayURL string, logger *log.Logger) *HTTPSender {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &HTTPSender{
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (s *HTTPSender) Send(ctx context.Context, phone, text string) error {
	payload, err := json.Marshal(map[string]string{
		"phone": phone,
		"text":  text,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// LogSender writes the wa.me link for each message to the log instead of
// delivering it. Used when no gateway is configured; the operator can still
// open the link manually from the dashboard.
type LogSender struct {
	logger *log.Logger
}

func NewLogSender(logger *log.Logger) *LogSender {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, phone, text string) error {
	s.logger.Printf("whatsapp message for %s: %s", phone, WhatsAppLink(phone, text))
	return nil
}
