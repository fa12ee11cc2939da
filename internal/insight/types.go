package insight

import "dermclinic/internal/i18n"

// Level is the triage tier assigned from a module's total score. Levels are
// ordered: informational < evaluation < priority.
type Level string

const (
	LevelInformational Level = "informational"
	LevelEvaluation    Level = "evaluation"
	LevelPriority      Level = "priority"
)

// Rank returns the ordering position of a level, for comparisons.
func (l Level) Rank() int {
	switch l {
	case LevelPriority:
		return 2
	case LevelEvaluation:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether l is one of the three defined levels.
func (l Level) IsValid() bool {
	switch l {
	case LevelInformational, LevelEvaluation, LevelPriority:
		return true
	}
	return false
}

// Option is one selectable answer. A red flag, when present, is surfaced in
// the result only if this option was selected. Notes are educational, not
// diagnostic.
type Option struct {
	ID      string     `json:"id"`
	Label   i18n.Text  `json:"label"`
	Score   int        `json:"score"`
	RedFlag *i18n.Text `json:"redFlag,omitempty"`
}

// Question is one step in a module's quiz.
type Question struct {
	ID      string     `json:"id"`
	Title   i18n.Text  `json:"title"`
	Helper  *i18n.Text `json:"helper,omitempty"`
	Options []Option   `json:"options"`
}

// Answers maps question id to the selected option id. Partial answer sets
// are tolerated by scoring; the stepping UI is expected to require one
// selection per question before completing.
type Answers map[string]string

// Result is the engine's output for one evaluation call. All narrative
// fields are bilingual regardless of the locale the caller asked with.
type Result struct {
	Level       Level       `json:"level"`
	Score       int         `json:"score"`
	Summary     i18n.Text   `json:"summary"`
	Explanation i18n.Text   `json:"explanation"`
	NextSteps   i18n.Lines  `json:"nextSteps"`
	RedFlags    *i18n.Lines `json:"redFlags,omitempty"`
}

// Module is one complete quiz definition for a single clinical topic.
type Module struct {
	Slug        string     `json:"slug"`
	Title       i18n.Text  `json:"title"`
	Description i18n.Text  `json:"description"`
	Questions   []Question `json:"questions"`

	profile profile
}

// findOption resolves an option id within a question, or nil.
func (q *Question) findOption(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}
