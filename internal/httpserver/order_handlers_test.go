package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizzaria-backend/internal/domain"
	"pizzaria-backend/internal/printer"
	ordersvc "pizzaria-backend/internal/service/order"

	"github.com/gin-gonic/gin"
)

type stubOrderService struct {
	order   *domain.Order
	orders  []domain.Order
	receipt []byte
	err     error

	canceledWith [2]string
}

func (s *stubOrderService) Checkout(_ context.Context, _ *domain.Pizzeria, _ ordersvc.CheckoutInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Get(_ context.Context, _, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) List(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) Advance(_ context.Context, _ *domain.Pizzeria, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Cancel(_ context.Context, _ *domain.Pizzeria, _, reason, freeText string) (*domain.Order, error) {
	s.canceledWith = [2]string{reason, freeText}
	return s.order, s.err
}

func (s *stubOrderService) PrintReceipt(_ context.Context, _ *domain.Pizzeria, _ string) error {
	return s.err
}

func (s *stubOrderService) EncodeReceipt(_ context.Context, _ *domain.Pizzeria, _ string) ([]byte, error) {
	return s.receipt, s.err
}

type stubCartService struct {
	lines   []domain.CartLine
	err     error
	cleared bool
}

func (s *stubCartService) Get(_ context.Context, _, _ string) ([]domain.CartLine, error) {
	return s.lines, s.err
}

func (s *stubCartService) Add(_ context.Context, _, _ string, line domain.CartLine) ([]domain.CartLine, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lines = append(s.lines, line)
	return s.lines, nil
}

func (s *stubCartService) UpdateQuantity(_ context.Context, _, _ string, _, _ int) ([]domain.CartLine, error) {
	return s.lines, s.err
}

func (s *stubCartService) Remove(_ context.Context, _, _ string, _ int) ([]domain.CartLine, error) {
	return s.lines, s.err
}

func (s *stubCartService) Clear(_ context.Context, _, _ string) error {
	s.cleared = true
	return s.err
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.PizzeriaRepo == nil {
		deps.PizzeriaRepo = &stubPizzeriaRepo{
			pizzeria: &domain.Pizzeria{ID: "p1", Slug: "ze", Name: "Pizzaria do Zé"},
		}
	}
	return buildRouter(log.New(io.Discard, "", 0), nil, deps)
}

func doJSON(router *gin.Engine, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckout_CreatedAndCartCleared(t *testing.T) {
	cart := &stubCartService{}
	svc := &stubOrderService{order: &domain.Order{ID: "o1", OrderNumber: 7, Status: domain.StatusPending, TotalCents: 6500}}
	router := testRouter(t, Deps{OrderSvc: svc, CartSvc: cart})

	body := ordersvc.CheckoutInput{
		CustomerName:  "Maria",
		CustomerPhone: "11988887777",
		PaymentMethod: "Pix",
		Lines:         []domain.CartLine{{ProductID: "pz1", SizeName: "Grande", Quantity: 1}},
	}
	rec := doJSON(router, http.MethodPost, "/pizzerias/ze/orders", body, map[string]string{sessionHeader: "sess-1"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !cart.cleared {
		t.Fatalf("expected session cart cleared after checkout")
	}
	if !strings.Contains(rec.Body.String(), `"orderNumber":7`) {
		t.Fatalf("expected order in response, got %s", rec.Body.String())
	}
}

func TestCheckout_EmptyCartMapsTo422(t *testing.T) {
	svc := &stubOrderService{err: domain.ErrEmptyCart}
	router := testRouter(t, Deps{OrderSvc: svc, CartSvc: &stubCartService{}})

	body := ordersvc.CheckoutInput{CustomerName: "Maria", CustomerPhone: "11988887777", PaymentMethod: "Pix"}
	rec := doJSON(router, http.MethodPost, "/pizzerias/ze/orders", body, nil)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
}

func TestCheckout_StaleCatalogMapsTo409(t *testing.T) {
	svc := &stubOrderService{err: domain.ErrUnknownProductOrSize}
	router := testRouter(t, Deps{OrderSvc: svc, CartSvc: &stubCartService{}})

	body := ordersvc.CheckoutInput{CustomerName: "Maria", CustomerPhone: "11988887777", PaymentMethod: "Pix"}
	rec := doJSON(router, http.MethodPost, "/pizzerias/ze/orders", body, nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestCheckout_StoreClosedMapsTo422(t *testing.T) {
	svc := &stubOrderService{err: domain.ErrStoreClosed}
	router := testRouter(t, Deps{OrderSvc: svc, CartSvc: &stubCartService{}})

	body := ordersvc.CheckoutInput{CustomerName: "Maria", CustomerPhone: "11988887777", PaymentMethod: "Pix"}
	rec := doJSON(router, http.MethodPost, "/pizzerias/ze/orders", body, nil)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
}

func TestTrackOrder_LimitedFields(t *testing.T) {
	svc := &stubOrderService{order: &domain.Order{
		ID:            "o1",
		OrderNumber:   7,
		Status:        domain.StatusPreparing,
		CustomerPhone: "11988887777",
		TotalCents:    6500,
	}}
	router := testRouter(t, Deps{OrderSvc: svc})

	rec := doJSON(router, http.MethodGet, "/pizzerias/ze/orders/o1", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	got := rec.Body.String()
	if !strings.Contains(got, `"status":"preparing"`) {
		t.Fatalf("expected status field, got %s", got)
	}
	if strings.Contains(got, "11988887777") {
		t.Fatalf("tracking view must not expose the customer phone: %s", got)
	}
}

func TestAdvanceOrder_ConflictMapsTo409(t *testing.T) {
	svc := &stubOrderService{err: domain.ErrConflict}
	router := testRouter(t, Deps{OrderSvc: svc})

	rec := doJSON(router, http.MethodPost, "/admin/pizzerias/ze/orders/o1/advance", nil, nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestAdvanceOrder_TerminalMapsTo409(t *testing.T) {
	svc := &stubOrderService{err: domain.ErrInvalidTransition}
	router := testRouter(t, Deps{OrderSvc: svc})

	rec := doJSON(router, http.MethodPost, "/admin/pizzerias/ze/orders/o1/advance", nil, nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestCancelOrder_PassesReasons(t *testing.T) {
	svc := &stubOrderService{order: &domain.Order{ID: "o1", Status: domain.StatusCanceled}}
	router := testRouter(t, Deps{OrderSvc: svc})

	body := map[string]string{"reason": domain.CancelReasonOther, "customReason": "cliente pediu por telefone"}
	rec := doJSON(router, http.MethodPost, "/admin/pizzerias/ze/orders/o1/cancel", body, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.canceledWith[0] != domain.CancelReasonOther || svc.canceledWith[1] != "cliente pediu por telefone" {
		t.Fatalf("unexpected cancel arguments: %v", svc.canceledWith)
	}
}

func TestCancelOrder_MissingReasonMapsTo422(t *testing.T) {
	svc := &stubOrderService{err: domain.ErrMissingCancellationReason}
	router := testRouter(t, Deps{OrderSvc: svc})

	rec := doJSON(router, http.MethodPost, "/admin/pizzerias/ze/orders/o1/cancel", map[string]string{}, nil)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
}

func TestPrintOrder_WriteFailureMapsTo502(t *testing.T) {
	svc := &stubOrderService{err: printer.ErrWriteFailed}
	router := testRouter(t, Deps{OrderSvc: svc})

	rec := doJSON(router, http.MethodPost, "/admin/pizzerias/ze/orders/o1/print", nil, nil)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
}

func TestOrderReceipt_StreamsBytes(t *testing.T) {
	raw := []byte{0x1b, 0x40, 'P', 'E', 'D', 'I', 'D', 'O', 0x0a}
	svc := &stubOrderService{receipt: raw}
	router := testRouter(t, Deps{OrderSvc: svc})

	rec := doJSON(router, http.MethodGet, "/admin/pizzerias/ze/orders/o1/receipt", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/octet-stream" {
		t.Fatalf("expected octet-stream, got %q", ct)
	}
	if !bytes.Equal(rec.Body.Bytes(), raw) {
		t.Fatalf("receipt bytes altered in transit")
	}
}

func TestCart_RequiresSessionHeader(t *testing.T) {
	router := testRouter(t, Deps{CartSvc: &stubCartService{}})

	rec := doJSON(router, http.MethodGet, "/pizzerias/ze/cart", nil, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCart_AddAndGet(t *testing.T) {
	cart := &stubCartService{}
	router := testRouter(t, Deps{CartSvc: cart})
	header := map[string]string{sessionHeader: "sess-1"}

	line := domain.CartLine{ProductID: "pz1", SizeName: "Grande", Quantity: 2}
	rec := doJSON(router, http.MethodPost, "/pizzerias/ze/cart/items", line, header)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(router, http.MethodGet, "/pizzerias/ze/cart", nil, header)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"productId":"pz1"`) {
		t.Fatalf("expected cart line in response, got %s", rec.Body.String())
	}
}

func TestUpdateCartItem_BadIndexMapsTo400(t *testing.T) {
	router := testRouter(t, Deps{CartSvc: &stubCartService{}})
	header := map[string]string{sessionHeader: "sess-1"}

	rec := doJSON(router, http.MethodPatch, "/pizzerias/ze/cart/items/abc", map[string]int{"delta": 1}, header)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
