package insight

import "dermclinic/internal/i18n"

// Recommendation is a lightweight internal link from an insight tool to a
// related blog article. Slugs must match the MDX filenames under
// content/blog/{en,ar}/ on the site.
type Recommendation struct {
	Slug  string    `json:"slug"`
	Title i18n.Text `json:"title"`
}

var recommendations = map[string][]Recommendation{
	"acne": {
		{
			Slug: "acne-basics",
			Title: i18n.Text{
				EN: "When acne is not “just acne”: a structured approach",
				AR: "متى لا يكون حبّ الشباب «مجرد حبّ شباب»؟ نهج منظّم",
			},
		},
	},
	"hair-loss": {
		{
			Slug: "hair-loss-workup",
			Title: i18n.Text{
				EN: "Hair loss workup: patterns, timelines, and what matters",
				AR: "تقييم تساقط الشعر: الأنماط والزمن وما الذي يهم",
			},
		},
	},
	"pigmentation": {
		{
			Slug: "pigmentation-melasma-guide",
			Title: i18n.Text{
				EN: "Pigmentation & melasma: why it recurs and how to manage it",
				AR: "التصبغات والكلف: لماذا تعود وكيف نُديرها بشكل صحيح",
			},
		},
	},
	"when-to-consult": {
		{
			Slug: "when-to-see-a-dermatologist",
			Title: i18n.Text{
				EN: "When to see a dermatologist: practical signals to not ignore",
				AR: "متى يجب زيارة طبيب الجلدية؟ إشارات عملية لا تُهمل",
			},
		},
	},
}

// Recommendations returns the related articles for a module slug. Modules
// without curated links return nil.
func Recommendations(slug string) []Recommendation {
	return recommendations[slug]
}
