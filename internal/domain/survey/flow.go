package survey

import "github.com/google/uuid"

// Flow models the kiosk's question-at-a-time navigation over a survey's
// ordered question list. The index is always clamped to [0, last]. Forward
// navigation is gated on required questions having a captured answer;
// backward navigation is always allowed above zero. Section headers never
// block navigation.
//
// Flow is a pure value: the caller supplies the set of answered question IDs
// (the durably persisted answers), so a reloaded kiosk can rebuild its
// position without server-side session state.
type Flow struct {
	questions []Question
	index     int
}

// NewFlow creates a flow positioned at the first question. Questions must
// already be sorted by display order.
func NewFlow(questions []Question) *Flow {
	return &Flow{questions: questions}
}

// Index returns the current question index, or -1 for an empty survey.
func (f *Flow) Index() int {
	if len(f.questions) == 0 {
		return -1
	}
	return f.index
}

// Current returns the question at the current index.
func (f *Flow) Current() (Question, bool) {
	if len(f.questions) == 0 {
		return Question{}, false
	}
	return f.questions[f.index], true
}

// AtEnd reports whether the flow is positioned on the last question.
func (f *Flow) AtEnd() bool {
	return len(f.questions) > 0 && f.index == len(f.questions)-1
}

// CanAdvance reports whether forward navigation is allowed from the current
// question given the set of answered question IDs. A required question
// blocks until answered; everything else is passable.
func (f *Flow) CanAdvance(answered map[uuid.UUID]bool) bool {
	q, ok := f.Current()
	if !ok {
		return false
	}
	if !q.Type.CollectsAnswer() {
		return true
	}
	if !q.IsRequired {
		return true
	}
	return answered[q.ID]
}

// Next advances one question if allowed and reports whether the index moved.
func (f *Flow) Next(answered map[uuid.UUID]bool) bool {
	if f.AtEnd() || len(f.questions) == 0 {
		return false
	}
	if !f.CanAdvance(answered) {
		return false
	}
	f.index++
	return true
}

// Prev moves back one question and reports whether the index moved.
func (f *Flow) Prev() bool {
	if f.index == 0 {
		return false
	}
	f.index--
	return true
}

// Seek positions the flow at the given index, clamped to the valid range.
func (f *Flow) Seek(index int) {
	if len(f.questions) == 0 {
		f.index = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(f.questions)-1 {
		index = len(f.questions) - 1
	}
	f.index = index
}

// MissingRequired returns the IDs of required answer-collecting questions
// that have no entry in answered, in display order.
func (f *Flow) MissingRequired(answered map[uuid.UUID]bool) []uuid.UUID {
	var missing []uuid.UUID
	for _, q := range f.questions {
		if q.IsRequired && q.Type.CollectsAnswer() && !answered[q.ID] {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
