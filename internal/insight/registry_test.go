package insight

import "testing"

func TestGetKnownSlugs(t *testing.T) {
	want := []string{
		"acne",
		"hair-loss",
		"pigmentation",
		"rosacea",
		"eczema",
		"psoriasis",
		"when-to-consult",
	}
	if len(Modules) != len(want) {
		t.Fatalf("registry holds %d modules, want %d", len(Modules), len(want))
	}
	for i, slug := range want {
		if Modules[i].Slug != slug {
			t.Errorf("Modules[%d].Slug = %q, want %q", i, Modules[i].Slug, slug)
		}
		m := Get(slug)
		if m == nil {
			t.Fatalf("Get(%q) = nil", slug)
		}
		if m != Modules[i] {
			t.Errorf("Get(%q) returned a different module", slug)
		}
	}
}

func TestGetUnknownSlug(t *testing.T) {
	for _, slug := range []string{"unknown-condition", "", "Acne", "acne "} {
		if m := Get(slug); m != nil {
			t.Errorf("Get(%q) = %q, want nil", slug, m.Slug)
		}
	}
}

// The module content is authored by hand, so the structural conventions are
// asserted here instead of at load time: a bad edit fails the build's tests
// rather than adding runtime validation the evaluation path never needs.
func TestModuleAuthoringConventions(t *testing.T) {
	seenSlugs := map[string]bool{}
	for _, m := range Modules {
		if m.Slug == "" {
			t.Fatal("module with empty slug")
		}
		if seenSlugs[m.Slug] {
			t.Errorf("duplicate slug %q", m.Slug)
		}
		seenSlugs[m.Slug] = true

		if m.Title.IsZero() || m.Description.IsZero() {
			t.Errorf("%s: missing bilingual title or description", m.Slug)
		}
		if len(m.Questions) == 0 {
			t.Errorf("%s: module has no questions", m.Slug)
		}

		seenQuestions := map[string]bool{}
		for _, q := range m.Questions {
			if seenQuestions[q.ID] {
				t.Errorf("%s: duplicate question id %q", m.Slug, q.ID)
			}
			seenQuestions[q.ID] = true

			if len(q.Options) < 2 {
				t.Errorf("%s/%s: %d options, want at least 2", m.Slug, q.ID, len(q.Options))
			}

			seenOptions := map[string]bool{}
			for _, o := range q.Options {
				if seenOptions[o.ID] {
					t.Errorf("%s/%s: duplicate option id %q", m.Slug, q.ID, o.ID)
				}
				seenOptions[o.ID] = true

				if o.Score < 0 {
					t.Errorf("%s/%s/%s: negative weight %d", m.Slug, q.ID, o.ID, o.Score)
				}
				if o.Label.IsZero() {
					t.Errorf("%s/%s/%s: missing bilingual label", m.Slug, q.ID, o.ID)
				}
				if o.RedFlag != nil && o.RedFlag.IsZero() {
					t.Errorf("%s/%s/%s: red flag present but empty", m.Slug, q.ID, o.ID)
				}
			}
		}

		for _, level := range []Level{LevelInformational, LevelEvaluation, LevelPriority} {
			if m.profile.summaries[level].IsZero() {
				t.Errorf("%s: missing %s summary", m.Slug, level)
			}
		}
	}
}

func TestRecommendationsMatchRegistrySlugs(t *testing.T) {
	for slug := range recommendations {
		if Get(slug) == nil {
			t.Errorf("recommendations keyed by unknown slug %q", slug)
		}
	}
	if got := Recommendations("acne"); len(got) == 0 {
		t.Error("acne has no blog recommendations")
	}
	if got := Recommendations("eczema"); got != nil {
		t.Errorf("eczema recommendations = %v, want none curated", got)
	}
}
