package insight

import (
	"reflect"
	"testing"

	"dermclinic/internal/i18n"
)

// selectOption builds an answer set choosing, for every question, the option
// at index pick (clamped to the last option).
func selectOption(m *Module, pick int) Answers {
	answers := make(Answers, len(m.Questions))
	for _, q := range m.Questions {
		i := pick
		if i >= len(q.Options) {
			i = len(q.Options) - 1
		}
		answers[q.ID] = q.Options[i].ID
	}
	return answers
}

func TestComputeScoreSumsSelectedWeights(t *testing.T) {
	for _, m := range Modules {
		for pick := 0; pick < 4; pick++ {
			answers := selectOption(m, pick)

			want := 0
			for _, q := range m.Questions {
				opt := q.findOption(answers[q.ID])
				want += opt.Score
			}

			got, _ := ComputeScore(m, answers)
			if got != want {
				t.Errorf("%s pick=%d: score = %d, want %d", m.Slug, pick, got, want)
			}
		}
	}
}

func TestComputeScoreIgnoresUnresolvableAnswers(t *testing.T) {
	m := Get("acne")

	tests := []struct {
		name    string
		answers Answers
		want    int
	}{
		{"empty answer set", Answers{}, 0},
		{"nil answer set", nil, 0},
		{"unknown question id", Answers{"no-such-question": "lt3"}, 0},
		{"unknown option id", Answers{"duration": "centuries"}, 0},
		{"partial answers", Answers{"duration": "gt12", "marks": "scar"}, 9},
		{"mixed valid and bogus", Answers{"duration": "gt12", "type": "bogus"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, redFlags := ComputeScore(m, tt.answers)
			if got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
			if tt.want == 0 && !redFlags.IsEmpty() {
				t.Errorf("unexpected red flags: %v", redFlags)
			}
		})
	}
}

func TestComputeScoreCollectsRedFlagsInQuestionOrder(t *testing.T) {
	m := Get("acne")
	answers := Answers{
		"duration": "gt12",
		"location": "jaw",
		"type":     "nodules",
		"marks":    "scar",
		"treat":    "rx",
	}

	score, redFlags := ComputeScore(m, answers)
	if score != 19 {
		t.Fatalf("score = %d, want 19", score)
	}
	if len(redFlags.EN) != 2 || len(redFlags.AR) != 2 {
		t.Fatalf("red flags = %d en / %d ar, want 2 / 2", len(redFlags.EN), len(redFlags.AR))
	}
	// "type" precedes "marks" in the module, so the nodule note comes first.
	if redFlags.EN[0] != *typeQuestionRedFlag(t, m) {
		t.Errorf("first red flag = %q, want the nodules note", redFlags.EN[0])
	}
}

func typeQuestionRedFlag(t *testing.T, m *Module) *string {
	t.Helper()
	for _, q := range m.Questions {
		if q.ID != "type" {
			continue
		}
		for _, o := range q.Options {
			if o.RedFlag != nil {
				return &o.RedFlag.EN
			}
		}
	}
	t.Fatal("acne type question has no red-flag option")
	return nil
}

func TestComputeScoreIsOrderIndependent(t *testing.T) {
	m := Get("hair-loss")
	// Maps have no insertion order, so build two literals with different
	// textual orders and check the outputs are value-equal.
	a := Answers{"tempo": "patchy", "duration": "gt6", "symptoms": "pain", "context": "yes"}
	b := Answers{"context": "yes", "symptoms": "pain", "duration": "gt6", "tempo": "patchy"}

	scoreA, flagsA := ComputeScore(m, a)
	scoreB, flagsB := ComputeScore(m, b)
	if scoreA != scoreB {
		t.Fatalf("scores differ: %d vs %d", scoreA, scoreB)
	}
	if !reflect.DeepEqual(flagsA, flagsB) {
		t.Fatalf("red flags differ: %v vs %v", flagsA, flagsB)
	}
}

func TestAttachRedFlagsOmitsEmpty(t *testing.T) {
	base := Result{Level: LevelInformational, Score: 3}

	got := attachRedFlags(base, i18n.Lines{})
	if got.RedFlags != nil {
		t.Fatalf("empty flags produced a redFlags field: %v", got.RedFlags)
	}
	if !reflect.DeepEqual(got, base) {
		t.Fatalf("result changed without flags: %+v", got)
	}

	flags := i18n.Lines{EN: []string{"note"}, AR: []string{"ملاحظة"}}
	got = attachRedFlags(base, flags)
	if got.RedFlags == nil {
		t.Fatal("flags were dropped")
	}
	if !reflect.DeepEqual(*got.RedFlags, flags) {
		t.Fatalf("redFlags = %v, want %v", *got.RedFlags, flags)
	}
}
