package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/salesdist/sales-dist-backend/internal/logger"
)

type Handler struct {
	service *Service
}

type registerRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DOB         *string `json:"dob,omitempty"`
	Department  string  `json:"department,omitempty"`
	Designation string  `json:"designation,omitempty"`
	Salary      float64 `json:"salary,omitempty"`
	DateOfJoin  *string `json:"dateOfJoin,omitempty"`
	ContactNo   string  `json:"contactNo,omitempty"`
	Address     string  `json:"address,omitempty"`
	RDCID       *int    `json:"rdcId,omitempty"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/auth/register", h.register)
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name, email and password required"})
	}

	err := h.service.Register(c.UserContext(), User{
		Name:        payload.Name,
		Email:       payload.Email,
		DOB:         payload.DOB,
		Department:  payload.Department,
		Designation: payload.Designation,
		Salary:      payload.Salary,
		DateOfJoin:  payload.DateOfJoin,
		ContactNo:   payload.ContactNo,
		Address:     payload.Address,
		RDCID:       payload.RDCID,
	}, payload.Password)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
		}
		logger.Error("registration failed", "email", payload.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Registration failed"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}
