package order

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"

	"github.com/salesdist/sales-dist-backend/internal/logger"
)

// dummyRepo records write calls and serves canned reads.
type dummyRepo struct {
	created       []Order
	lastCreatedBy string
	lastUpdatedBy string
	orders        map[int]Order
}

func newDummyRepo() *dummyRepo {
	return &dummyRepo{orders: map[int]Order{}}
}

func (r *dummyRepo) Create(_ context.Context, ord Order, createdBy string) (int, error) {
	r.created = append(r.created, ord)
	r.lastCreatedBy = createdBy
	return 123, nil
}

func (r *dummyRepo) Update(_ context.Context, orderID int, ord Order, updatedBy string) error {
	if _, ok := r.orders[orderID]; !ok {
		return ErrNotFound
	}
	r.lastUpdatedBy = updatedBy
	ord.OrderID = orderID
	r.orders[orderID] = ord
	return nil
}

func (r *dummyRepo) List(_ context.Context) ([]Order, error) {
	out := make([]Order, 0, len(r.orders))
	for _, ord := range r.orders {
		out = append(out, ord)
	}
	return out, nil
}

func (r *dummyRepo) GetByID(_ context.Context, orderID int) (Order, error) {
	ord, ok := r.orders[orderID]
	if !ok {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (r *dummyRepo) ListByCreatedBy(_ context.Context, createdBy string) ([]Order, error) {
	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.CreatedBy == createdBy {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *dummyRepo) ListByRetailerID(_ context.Context, retailerID int) ([]Order, error) {
	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.RetailerID == retailerID {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *dummyRepo) ListByRDCID(_ context.Context, rdcID int) ([]Order, error) {
	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.RegionalDistributionCenterID == rdcID {
			out = append(out, ord)
		}
	}
	return out, nil
}

var _ Repository = (*dummyRepo)(nil)

// setupOrderApp injects token claims via a lightweight middleware when the
// X-Employee-ID header is present, avoiding the full jwtware middleware.
func setupOrderApp(repo Repository) *fiber.App {
	logger.Init()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Employee-ID"); v != "" {
			claims := jwt.MapClaims{
				"userId":     float64(1),
				"employeeId": v,
				"email":      "jane@example.com",
				"roles":      []interface{}{"SalesManager"},
			}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	NewHandler(NewService(repo)).RegisterProtectedRoutes(app)
	return app
}

func orderPayload() map[string]interface{} {
	return map[string]interface{}{
		"retailerId":                   5,
		"regionalDistributionCenterId": 2,
		"estimatedDeliveryDate":        time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"orderStatus":                  StatusPending,
		"items": []map[string]interface{}{
			{"productId": 1, "quantity": 3, "unitPrice": 50},
			{"productId": 2, "quantity": 1, "unitPrice": 120},
		},
	}
}

func doOrderJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, employeeID string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if employeeID != "" {
		req.Header.Set("X-Employee-ID", employeeID)
	}
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	out, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return res.StatusCode, out
}

func TestCreateOrder_Success(t *testing.T) {
	repo := newDummyRepo()
	app := setupOrderApp(repo)

	status, body := doOrderJSON(t, app, "POST", "/orders", orderPayload(), "EMP-9")
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}

	var resp struct {
		OrderID int `json:"orderId"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.OrderID != 123 {
		t.Errorf("expected orderId 123, got %d", resp.OrderID)
	}

	if repo.lastCreatedBy != "EMP-9" {
		t.Errorf("expected createdBy from token claims, got %q", repo.lastCreatedBy)
	}
	if len(repo.created) != 1 || len(repo.created[0].Items) != 2 {
		t.Fatalf("expected one order with 2 items, got %+v", repo.created)
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	app := setupOrderApp(newDummyRepo())

	payload := orderPayload()
	payload["items"] = []map[string]interface{}{}

	status, _ := doOrderJSON(t, app, "POST", "/orders", payload, "EMP-9")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestCreateOrder_Unauthorized(t *testing.T) {
	app := setupOrderApp(newDummyRepo())

	status, _ := doOrderJSON(t, app, "POST", "/orders", orderPayload(), "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestUpdateOrder_NotFound(t *testing.T) {
	app := setupOrderApp(newDummyRepo())

	status, _ := doOrderJSON(t, app, "PUT", "/orders/42", orderPayload(), "EMP-9")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestUpdateOrder_Success(t *testing.T) {
	repo := newDummyRepo()
	repo.orders[42] = Order{OrderID: 42, OrderStatus: StatusPending}
	app := setupOrderApp(repo)

	status, _ := doOrderJSON(t, app, "PUT", "/orders/42", orderPayload(), "EMP-4")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if repo.lastUpdatedBy != "EMP-4" {
		t.Errorf("expected updatedBy from token claims, got %q", repo.lastUpdatedBy)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	app := setupOrderApp(newDummyRepo())

	status, _ := doOrderJSON(t, app, "GET", "/orders/77", nil, "EMP-9")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestGetOrdersByRetailer(t *testing.T) {
	repo := newDummyRepo()
	repo.orders[1] = Order{OrderID: 1, RetailerID: 5, Items: []OrderItem{{ProductID: 1, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(20)}}}
	repo.orders[2] = Order{OrderID: 2, RetailerID: 6}
	app := setupOrderApp(repo)

	status, body := doOrderJSON(t, app, "GET", "/orders/retailer/5", nil, "EMP-9")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var resp struct {
		Orders []Order `json:"orders"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Orders) != 1 || resp.Orders[0].OrderID != 1 {
		t.Fatalf("expected only retailer 5's order, got %+v", resp.Orders)
	}
}
