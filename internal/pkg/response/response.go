package response

import "github.com/gofiber/fiber/v2"

// Envelope is the JSON shape every endpoint responds with. Success bodies
// carry message/data; error bodies carry the nested error object.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Problem    `json:"error,omitempty"`
}

// Problem describes a failed request.
type Problem struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Details    interface{} `json:"details,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *fiber.Ctx, message string, data interface{}) error {
	return success(c, fiber.StatusOK, message, data)
}

// Created writes a 201 success envelope.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return success(c, fiber.StatusCreated, message, data)
}

func success(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error writes the error envelope with the given HTTP status. Details is
// optional extra context for the client, such as validation messages.
func Error(c *fiber.Ctx, message string, statusCode int, details interface{}) error {
	return c.Status(statusCode).JSON(Envelope{
		Status: "error",
		Error: &Problem{
			Message:    message,
			StatusCode: statusCode,
			Details:    details,
		},
	})
}

// Unauthorized is Error with 401, for auth middleware.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusUnauthorized, nil)
}
