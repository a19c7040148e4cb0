package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tutorly/internal/knowledge"
	"github.com/abhisek/tutorly/internal/llm"
	"github.com/abhisek/tutorly/internal/session"
)

// JsonResponse writes the standard {status, message, data} envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data any) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse reports per-field validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errs map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errs)
}

// errorResponse maps domain errors to HTTP status codes.
func (s *Server) errorResponse(c *fiber.Ctx, err error) error {
	var rateLimit *llm.ErrRateLimit
	var unavailable *llm.ErrProviderUnavailable

	switch {
	case errors.Is(err, knowledge.ErrSubjectNotFound), errors.Is(err, knowledge.ErrConceptNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, knowledge.ErrInvalidSubject), errors.Is(err, session.ErrInvalidUser):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.As(err, &rateLimit):
		return JsonResponse(c, fiber.StatusTooManyRequests, false, "Completion provider is rate limited, try again later.", nil)
	case errors.As(err, &unavailable):
		return JsonResponse(c, fiber.StatusBadGateway, false, "Completion provider is unavailable.", nil)
	}

	s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error", nil)
}
