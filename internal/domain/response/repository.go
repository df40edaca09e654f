package response

import (
	"context"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
)

// ListFilter narrows the admin response listing. Limit/Offset paging,
// completed responses only, newest-first.
type ListFilter struct {
	SurveyID *uuid.UUID
	Limit    int
	Offset   int
}

// ListItem is one row of the admin response listing, joined with the parent
// survey's name.
type ListItem struct {
	Response
	SurveyName string
}

// AnswerDetail is one answer joined with its question's metadata, decoded
// for display, ordered by the question's display order.
type AnswerDetail struct {
	Answer
	QuestionText    string
	QuestionType    survey.QuestionType
	QuestionOptions []string
	DisplayOrder    int
}

// Repository defines the interface for response and answer persistence
type Repository interface {
	// Create persists a new response at survey start
	Create(ctx context.Context, r *Response) error

	// FindByID finds a response by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Response, error)

	// MarkComplete sets the completion flag and timestamp
	MarkComplete(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpsertAnswer inserts or overwrites the answer for the answer's
	// (response, question) pair as a single atomic statement
	UpsertAnswer(ctx context.Context, a *Answer) error

	// AnsweredQuestionIDs returns the IDs of questions that have a stored
	// answer for the response
	AnsweredQuestionIDs(ctx context.Context, responseID uuid.UUID) (map[uuid.UUID]bool, error)

	// NPSScore returns the numeric answer to the response's nps-typed
	// question, or ok=false when the response carries none
	NPSScore(ctx context.Context, responseID uuid.UUID) (int, bool, error)

	// List returns completed responses matching the filter, joined with
	// survey names, ordered by completion time descending
	List(ctx context.Context, filter ListFilter) ([]ListItem, error)

	// AnswerDetails returns all answers for a response joined with question
	// metadata, ordered by display order
	AnswerDetails(ctx context.Context, responseID uuid.UUID) ([]AnswerDetail, error)
}
