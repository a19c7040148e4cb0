// Package server exposes the tutor over an HTTP JSON API.
package server

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/abhisek/tutorly/internal/knowledge"
	"github.com/abhisek/tutorly/internal/tutor"
)

// Server wires HTTP routes to a tutor Agent.
type Server struct {
	app      *fiber.App
	agent    *tutor.Agent
	kb       *knowledge.Store
	logger   *zap.Logger
	validate *validator.Validate
}

// New builds the fiber app and registers all routes. logger may be nil.
func New(agent *tutor.Agent, kb *knowledge.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "tutorly",
			DisableStartupMessage: true,
			// Handlers hand request strings to the knowledge cache and
			// session records, which outlive the request.
			Immutable: true,
		}),
		agent:    agent,
		kb:       kb,
		logger:   log,
		validate: newValidator(),
	}

	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type",
	}))
	s.app.Use(logger.New(logger.Config{
		Format: "${ip} ${method} ${path} ${status} ${latency}\n",
		Output: zap.NewStdLog(log.Named("http")).Writer(),
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})

	s.app.Get("/subjects", s.listSubjects)
	s.app.Get("/subjects/:subject", s.showSubject)
	s.app.Get("/subjects/:subject/concepts", s.listConcepts)
	s.app.Post("/questions", s.askQuestion)
	s.app.Post("/exercises", s.createExercise)
	s.app.Post("/grades", s.gradeAnswer)
	s.app.Get("/users/:id/progress", s.userProgress)
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
