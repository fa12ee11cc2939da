package insight

import "dermclinic/internal/i18n"

// profile holds the fixed constants behind one module's evaluation: the two
// tier thresholds, the per-tier summary table, the explanation, and the
// next-step text. The closing step differs between the informational tier
// and the two consultation tiers; modules whose steps do not vary by tier
// leave both closing fields zero.
type profile struct {
	highThreshold int
	midThreshold  int

	summaries   map[Level]i18n.Text
	explanation i18n.Text

	baseSteps   []i18n.Text
	monitorStep i18n.Text // closes the list at the informational tier
	consultStep i18n.Text // closes the list at evaluation and priority
}

// classify maps a total score to a tier. Ranges are half-open: a score equal
// to a threshold lands in the higher tier.
func (p *profile) classify(score int) Level {
	switch {
	case score >= p.highThreshold:
		return LevelPriority
	case score >= p.midThreshold:
		return LevelEvaluation
	default:
		return LevelInformational
	}
}

// nextSteps builds the ordered recommendation list for a tier.
func (p *profile) nextSteps(level Level) i18n.Lines {
	var steps i18n.Lines
	for _, s := range p.baseSteps {
		steps.Append(s)
	}
	closing := p.consultStep
	if level == LevelInformational {
		closing = p.monitorStep
	}
	if !closing.IsZero() {
		steps.Append(closing)
	}
	return steps
}

// Evaluate scores the answer set and composes the module's result. The
// locale argument is part of the call shape used by the web clients; it does
// not change scoring or which text variant is chosen, since every result
// field stays bilingual.
func (m *Module) Evaluate(answers Answers, locale i18n.Locale) Result {
	_ = locale

	score, redFlags := ComputeScore(m, answers)
	level := m.profile.classify(score)

	result := Result{
		Level:       level,
		Score:       score,
		Summary:     m.profile.summaries[level],
		Explanation: m.profile.explanation,
		NextSteps:   m.profile.nextSteps(level),
	}

	return attachRedFlags(result, redFlags)
}

// Thresholds exposes the module's tier boundaries (high, mid).
func (m *Module) Thresholds() (int, int) {
	return m.profile.highThreshold, m.profile.midThreshold
}
