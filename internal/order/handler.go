package order

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/salesdist/sales-dist-backend/internal/auth"
	"github.com/salesdist/sales-dist-backend/internal/logger"
)

type Handler struct {
	service *Service
}

type orderItemRequest struct {
	ProductID int             `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type orderRequest struct {
	RetailerID                   int                `json:"retailerId"`
	RegionalDistributionCenterID int                `json:"regionalDistributionCenterId"`
	EstimatedDeliveryDate        time.Time          `json:"estimatedDeliveryDate"`
	OrderStatus                  string             `json:"orderStatus"`
	Items                        []orderItemRequest `json:"items"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/orders", h.createOrder)
	app.Get("/orders", h.getOrders)
	// specific prefixes before the :orderId parameter
	app.Get("/orders/created-by/:createdBy", h.getOrdersByCreatedBy)
	app.Get("/orders/retailer/:retailerId<int>", h.getOrdersByRetailerID)
	app.Get("/orders/rdc/:rdcId<int>", h.getOrdersByRDCID)
	app.Get("/orders/:orderId<int>", h.getOrder)
	app.Put("/orders/:orderId<int>", h.updateOrder)
}

func (p orderRequest) toOrder() Order {
	ord := Order{
		RetailerID:                   p.RetailerID,
		RegionalDistributionCenterID: p.RegionalDistributionCenterID,
		EstimatedDeliveryDate:        p.EstimatedDeliveryDate,
		OrderStatus:                  p.OrderStatus,
		Items:                        make([]OrderItem, 0, len(p.Items)),
	}
	for _, item := range p.Items {
		ord.Items = append(ord.Items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return ord
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(orderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(payload.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "order must contain at least one item"})
	}

	claims, err := auth.ClaimsFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orderID, err := h.service.Create(c.UserContext(), payload.toOrder(), claims.EmployeeID)
	if err != nil {
		if errors.Is(err, ErrNoItems) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		logger.Error("create order failed", "employeeId", claims.EmployeeID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Order creation failed"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"orderId": orderID,
	})
}

func (h *Handler) updateOrder(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	payload := new(orderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(payload.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "order must contain at least one item"})
	}

	claims, err := auth.ClaimsFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Update(c.UserContext(), orderID, payload.toOrder(), claims.EmployeeID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		case errors.Is(err, ErrNoItems):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			logger.Error("update order failed", "orderId", orderID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Order update failed"})
		}
	}

	return c.JSON(fiber.Map{"message": "Order updated successfully"})
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	orders, err := h.service.List(c.UserContext())
	if err != nil {
		logger.Error("list orders failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve orders"})
	}

	return c.JSON(fiber.Map{
		"message": "Orders retrieved successfully",
		"orders":  orders,
	})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	ord, err := h.service.GetByID(c.UserContext(), orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		logger.Error("get order failed", "orderId", orderID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve order"})
	}

	return c.JSON(fiber.Map{
		"message": "Order retrieved successfully",
		"order":   ord,
	})
}

func (h *Handler) getOrdersByCreatedBy(c *fiber.Ctx) error {
	createdBy := c.Params("createdBy")

	orders, err := h.service.ListByCreatedBy(c.UserContext(), createdBy)
	if err != nil {
		logger.Error("list orders by creator failed", "createdBy", createdBy, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve orders"})
	}

	return c.JSON(fiber.Map{
		"message": "Orders retrieved successfully",
		"orders":  orders,
	})
}

func (h *Handler) getOrdersByRetailerID(c *fiber.Ctx) error {
	retailerID, err := strconv.Atoi(c.Params("retailerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid retailer id"})
	}

	orders, err := h.service.ListByRetailerID(c.UserContext(), retailerID)
	if err != nil {
		logger.Error("list orders by retailer failed", "retailerId", retailerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve orders"})
	}

	return c.JSON(fiber.Map{
		"message": "Orders retrieved successfully",
		"orders":  orders,
	})
}

func (h *Handler) getOrdersByRDCID(c *fiber.Ctx) error {
	rdcID, err := strconv.Atoi(c.Params("rdcId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid rdc id"})
	}

	orders, err := h.service.ListByRDCID(c.UserContext(), rdcID)
	if err != nil {
		logger.Error("list orders by rdc failed", "rdcId", rdcID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve orders"})
	}

	return c.JSON(fiber.Map{
		"message": "Orders retrieved successfully",
		"orders":  orders,
	})
}
