package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/salesdist/sales-dist-backend/internal/logger"
)

type Handler struct {
	service *Service
}

type productRequest struct {
	ProductName   string          `json:"productName"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	UnitOfMeasure string          `json:"unitOfMeasure"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/products", h.getProducts)
	app.Get("/products/:productId<int>", h.getProduct)
	app.Post("/products", h.addProduct)
	app.Put("/products/:productId<int>", h.updateProduct)
	app.Delete("/products/:productId<int>", h.deleteProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		logger.Error("list products failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve products"})
	}

	return c.JSON(fiber.Map{
		"message":  "Products retrieved successfully",
		"products": products,
	})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	p, err := h.service.GetByID(c.UserContext(), productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		logger.Error("get product failed", "productId", productID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve product"})
	}

	return c.JSON(fiber.Map{
		"message": "Product retrieved successfully",
		"product": p,
	})
}

func (h *Handler) addProduct(c *fiber.Ctx) error {
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	productID, err := h.service.Create(c.UserContext(), Product{
		ProductName:   payload.ProductName,
		UnitPrice:     payload.UnitPrice,
		UnitOfMeasure: payload.UnitOfMeasure,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		logger.Error("create product failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Product creation failed"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Product created successfully",
		"productId": productID,
	})
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	err = h.service.Update(c.UserContext(), productID, Product{
		ProductName:   payload.ProductName,
		UnitPrice:     payload.UnitPrice,
		UnitOfMeasure: payload.UnitOfMeasure,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		default:
			logger.Error("update product failed", "productId", productID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Product update failed"})
		}
	}

	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	if err := h.service.Delete(c.UserContext(), productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		logger.Error("delete product failed", "productId", productID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Product deletion failed"})
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
