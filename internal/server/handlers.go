package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/tutorly/internal/heuristics"
	"github.com/abhisek/tutorly/internal/knowledge"
	"github.com/abhisek/tutorly/internal/tutor"
)

type questionRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text" validate:"notblank"`
}

type exerciseRequest struct {
	Subject string `json:"subject" validate:"required"`
	Concept string `json:"concept" validate:"required"`
	Level   string `json:"level" validate:"required,level"`
}

type gradeRequest struct {
	UserID   string         `json:"user_id" validate:"required"`
	Exercise tutor.Exercise `json:"exercise" validate:"required"`
	Answer   string         `json:"answer" validate:"notblank"`
}

func (s *Server) listSubjects(c *fiber.Ctx) error {
	subjects, err := s.kb.Subjects()
	if err != nil {
		return s.errorResponse(c, err)
	}
	return JsonResponse(c, fiber.StatusOK, true, "Subjects fetched", subjects)
}

type subjectResponse struct {
	Subject  string   `json:"subject"`
	Image    string   `json:"image,omitempty"`
	Concepts []string `json:"concepts"`
}

func (s *Server) showSubject(c *fiber.Ctx) error {
	subject := c.Params("subject")
	image, err := s.kb.Image(subject)
	if err != nil {
		return s.errorResponse(c, err)
	}
	concepts, err := s.kb.Concepts(subject)
	if err != nil {
		return s.errorResponse(c, err)
	}
	if concepts == nil {
		concepts = []string{}
	}
	return JsonResponse(c, fiber.StatusOK, true, "Subject fetched", subjectResponse{
		Subject:  subject,
		Image:    image,
		Concepts: concepts,
	})
}

func (s *Server) listConcepts(c *fiber.Ctx) error {
	content, err := s.kb.Load(c.Params("subject"))
	if err != nil {
		return s.errorResponse(c, err)
	}
	concepts := content.Concepts
	if concepts == nil {
		concepts = []knowledge.Concept{}
	}
	return JsonResponse(c, fiber.StatusOK, true, "Concepts fetched", concepts)
}

func (s *Server) askQuestion(c *fiber.Ctx) error {
	req := new(questionRequest)
	if ok, err := s.bindAndValidate(c, req); !ok {
		return err
	}

	res, err := s.agent.HandleQuestion(c.UserContext(), req.UserID, req.Subject, req.Text)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return JsonResponse(c, fiber.StatusOK, true, "Question answered", res)
}

func (s *Server) createExercise(c *fiber.Ctx) error {
	req := new(exerciseRequest)
	if ok, err := s.bindAndValidate(c, req); !ok {
		return err
	}

	// Validated above; ParseLevel only lowercases here.
	level, _ := heuristics.ParseLevel(req.Level)
	ex, err := s.agent.GenerateExercise(c.UserContext(), req.Subject, req.Concept, level.String())
	if err != nil {
		return s.errorResponse(c, err)
	}
	return JsonResponse(c, fiber.StatusCreated, true, "Exercise created", ex)
}

func (s *Server) gradeAnswer(c *fiber.Ctx) error {
	req := new(gradeRequest)
	if ok, err := s.bindAndValidate(c, req); !ok {
		return err
	}

	res, err := s.agent.GradeAnswer(c.UserContext(), req.Exercise, req.Answer, req.UserID)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return JsonResponse(c, fiber.StatusOK, true, "Answer graded", res)
}

func (s *Server) userProgress(c *fiber.Ctx) error {
	p, err := s.agent.Progress(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.errorResponse(c, err)
	}
	return JsonResponse(c, fiber.StatusOK, true, "Progress fetched", p)
}
