package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"career-navigator/internal/models"
	"career-navigator/internal/services"
)

type InterviewHandler struct {
	interviews services.InterviewService
}

func NewInterviewHandler(interviews services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviews: interviews,
	}
}

type startInterviewRequest struct {
	Role string `json:"role"`
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

// HandleStart creates a new interview session for a role.
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	var req startInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	sess, err := h.interviews.StartSession(req.Role)
	if err != nil {
		return interviewError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(sess)
}

// HandleQuestion generates the next interview question, appending a turn.
func (h *InterviewHandler) HandleQuestion(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return interviewError(c, err)
	}

	turn, err := h.interviews.AskQuestion(c.UserContext(), sessionID)
	if err != nil {
		return interviewError(c, err)
	}

	return c.JSON(turn)
}

// HandleAnswer submits the candidate's answer to the current question and
// returns the evaluated turn.
func (h *InterviewHandler) HandleAnswer(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return interviewError(c, err)
	}

	var req submitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	turn, err := h.interviews.SubmitAnswer(c.UserContext(), sessionID, req.Answer)
	if err != nil {
		return interviewError(c, err)
	}

	return c.JSON(turn)
}

// HandleEnd ends the session. Idempotent.
func (h *InterviewHandler) HandleEnd(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return interviewError(c, err)
	}

	sess, err := h.interviews.EndSession(sessionID)
	if err != nil {
		return interviewError(c, err)
	}

	return c.JSON(sess)
}

// HandleGet returns a snapshot of the session.
func (h *InterviewHandler) HandleGet(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return interviewError(c, err)
	}

	sess, err := h.interviews.GetSession(sessionID)
	if err != nil {
		return interviewError(c, err)
	}

	return c.JSON(sess)
}

func parseSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, models.ErrSessionNotFound
	}
	return id, nil
}

func interviewError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrEmptyRole):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrEmptyAnswer):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, models.ErrSessionEnded), errors.Is(err, models.ErrNoPendingQuestion):
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
