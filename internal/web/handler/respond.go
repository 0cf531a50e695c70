// Package handler holds the shared pieces of the JSON API handlers: the
// response envelope, route prefixes and the handler service contract.
package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Pagination is the pagination block of a list response.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
}

// Success sends data inside the success envelope.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Created sends data inside the success envelope with a 201 status.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Message sends a success envelope carrying only a message.
func Message(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// Page sends data plus pagination inside the success envelope.
func Page(c *fiber.Ctx, data interface{}, p Pagination) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

// Error sends a failure envelope with the given status code.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
