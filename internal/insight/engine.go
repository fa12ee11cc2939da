package insight

import "dermclinic/internal/i18n"

// ComputeScore walks the module's questions in order, sums the weights of
// the selected options, and collects any red-flag notes the selections
// carry. Unanswered questions and option ids that match nothing contribute
// zero; probing with incomplete answers is not an error.
func ComputeScore(m *Module, answers Answers) (int, i18n.Lines) {
	score := 0
	var redFlags i18n.Lines

	for i := range m.Questions {
		q := &m.Questions[i]
		opt := q.findOption(answers[q.ID])
		if opt == nil {
			continue
		}
		score += opt.Score
		if opt.RedFlag != nil {
			redFlags.Append(*opt.RedFlag)
		}
	}

	return score, redFlags
}

// attachRedFlags returns the result unchanged when no red flags were
// collected; a result without flags never carries an empty redFlags field.
func attachRedFlags(result Result, redFlags i18n.Lines) Result {
	if redFlags.IsEmpty() {
		return result
	}
	result.RedFlags = &i18n.Lines{EN: redFlags.EN, AR: redFlags.AR}
	return result
}
