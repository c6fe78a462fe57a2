package models

// InterviewTurn is one question/answer/evaluation unit within a session.
// A turn is created with only the question set; Answer and Evaluation are
// filled together once the candidate's response is evaluated.
type InterviewTurn struct {
	Question   string `json:"question"`
	Answer     string `json:"answer,omitempty"`
	Evaluation string `json:"evaluation,omitempty"`
}

// Answered reports whether the candidate has responded to this turn.
func (t InterviewTurn) Answered() bool {
	return t.Answer != ""
}

// InterviewSession is a read-only snapshot of a mock-interview session.
// Turns is a copy; mutating it has no effect on the live session.
type InterviewSession struct {
	ID     string          `json:"session_id"`
	Role   string          `json:"role"`
	Turns  []InterviewTurn `json:"turns"`
	Active bool            `json:"active"`
}
