package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"career-navigator/internal/models"
)

const fallbackEvaluation = "Score: 5/10\nEvaluation: Unable to evaluate answer at this time."

// InterviewService manages mock-interview sessions: an ordered, append-only
// sequence of question/answer/evaluation turns per role. At most one live
// session exists per role; starting a new one for the same role ends the
// previous session.
type InterviewService interface {
	StartSession(role string) (models.InterviewSession, error)
	AskQuestion(ctx context.Context, sessionID uuid.UUID) (models.InterviewTurn, error)
	SubmitAnswer(ctx context.Context, sessionID uuid.UUID, answer string) (models.InterviewTurn, error)
	EndSession(sessionID uuid.UUID) (models.InterviewSession, error)
	GetSession(sessionID uuid.UUID) (models.InterviewSession, error)
}

// session is the live, mutable state behind one interview. Turns is
// append-only while active; every mutation happens under mu, so readers
// never observe a turn with an answer but no evaluation.
type session struct {
	mu     sync.Mutex
	id     uuid.UUID
	role   string
	turns  []models.InterviewTurn
	active bool
}

// snapshot returns a read-only copy; callers must hold s.mu.
func (s *session) snapshot() models.InterviewSession {
	return models.InterviewSession{
		ID:     s.id.String(),
		Role:   s.role,
		Turns:  append([]models.InterviewTurn(nil), s.turns...),
		Active: s.active,
	}
}

type interviewService struct {
	executor TaskExecutor

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	byRole   map[string]uuid.UUID
}

func NewInterviewService(executor TaskExecutor) InterviewService {
	return &interviewService{
		executor: executor,
		sessions: make(map[uuid.UUID]*session),
		byRole:   make(map[string]uuid.UUID),
	}
}

// StartSession implements InterviewService. Requires a non-empty role.
func (svc *interviewService) StartSession(role string) (models.InterviewSession, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return models.InterviewSession{}, models.ErrEmptyRole
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	// One live session per role context: replace any existing one.
	if prevID, ok := svc.byRole[role]; ok {
		if prev := svc.sessions[prevID]; prev != nil {
			prev.mu.Lock()
			if prev.active {
				log.Printf("🔁 Replacing live interview session for role %q\n", role)
			}
			prev.active = false
			prev.mu.Unlock()
		}
	}

	sess := &session{
		id:     uuid.New(),
		role:   role,
		turns:  []models.InterviewTurn{},
		active: true,
	}
	svc.sessions[sess.id] = sess
	svc.byRole[role] = sess.id

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// AskQuestion implements InterviewService. A new turn is appended even when
// question generation fails; the session is never left without a current
// turn after a question request on an active session.
func (svc *interviewService) AskQuestion(ctx context.Context, sessionID uuid.UUID) (models.InterviewTurn, error) {
	sess, err := svc.lookup(sessionID)
	if err != nil {
		return models.InterviewTurn{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.active {
		return models.InterviewTurn{}, models.ErrSessionEnded
	}

	question, err := svc.executor.Run(ctx, TaskQuestion, map[string]string{"role": sess.role})
	if err != nil {
		log.Printf("⚠️  Failed to generate interview question, using fallback: %v\n", err)
		question = fmt.Sprintf("Tell me about your experience in %s?", sess.role)
	}

	turn := models.InterviewTurn{Question: question}
	sess.turns = append(sess.turns, turn)
	return turn, nil
}

// SubmitAnswer implements InterviewService. Valid only while the current
// (last) turn is unanswered. Blank answers are rejected without mutating
// the session. Answer and evaluation are set together under the session
// lock, never independently observable as half-set.
func (svc *interviewService) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, answer string) (models.InterviewTurn, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return models.InterviewTurn{}, models.ErrEmptyAnswer
	}

	sess, err := svc.lookup(sessionID)
	if err != nil {
		return models.InterviewTurn{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.active {
		return models.InterviewTurn{}, models.ErrSessionEnded
	}
	if len(sess.turns) == 0 || sess.turns[len(sess.turns)-1].Answered() {
		return models.InterviewTurn{}, models.ErrNoPendingQuestion
	}

	current := &sess.turns[len(sess.turns)-1]

	evaluation, err := svc.executor.Run(ctx, TaskEvaluate, map[string]string{
		"role":     sess.role,
		"question": current.Question,
		"answer":   answer,
	})
	if err != nil {
		log.Printf("⚠️  Failed to evaluate answer, using fallback: %v\n", err)
		evaluation = fallbackEvaluation
	}

	current.Answer = answer
	current.Evaluation = evaluation
	return *current, nil
}

// EndSession implements InterviewService. Idempotent: ending an already
// ended session returns its terminal snapshot unchanged.
func (svc *interviewService) EndSession(sessionID uuid.UUID) (models.InterviewSession, error) {
	sess, err := svc.lookup(sessionID)
	if err != nil {
		return models.InterviewSession{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.active = false
	return sess.snapshot(), nil
}

// GetSession implements InterviewService.
func (svc *interviewService) GetSession(sessionID uuid.UUID) (models.InterviewSession, error) {
	sess, err := svc.lookup(sessionID)
	if err != nil {
		return models.InterviewSession{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (svc *interviewService) lookup(sessionID uuid.UUID) (*session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	sess, ok := svc.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return sess, nil
}
