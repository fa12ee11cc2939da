package insight

import "dermclinic/internal/i18n"

var hairLoss = &Module{
	Slug:  "hair-loss",
	Title: i18n.Text{EN: "Hair Loss Insight", AR: "إرشادات تساقط الشعر"},
	Description: i18n.Text{
		EN: "A structured guide to understand common patterns and when evaluation is recommended.",
		AR: "دليل منظم لفهم الأنماط الشائعة ومتى يُنصح بالتقييم.",
	},
	Questions: []Question{
		{
			ID:    "tempo",
			Title: i18n.Text{EN: "How did it start?", AR: "كيف بدأ التساقط؟"},
			Options: []Option{
				{ID: "gradual", Label: i18n.Text{EN: "Gradual over months", AR: "تدريجي خلال أشهر"}, Score: 2},
				{ID: "sudden", Label: i18n.Text{EN: "Sudden increase in shedding", AR: "زيادة مفاجئة في التساقط"}, Score: 3},
				{
					ID:    "patchy",
					Label: i18n.Text{EN: "Patchy / localized loss", AR: "فراغات موضعية"},
					Score: 5,
					RedFlag: &i18n.Text{
						EN: "Patchy hair loss is a pattern that benefits from timely clinical evaluation.",
						AR: "الفراغات الموضعية نمط قد يستفيد من تقييم متخصص في وقت مبكر.",
					},
				},
			},
		},
		{
			ID:    "duration",
			Title: i18n.Text{EN: "How long has it been ongoing?", AR: "منذ متى؟"},
			Options: []Option{
				{ID: "lt2", Label: i18n.Text{EN: "Less than 2 months", AR: "أقل من شهرين"}, Score: 1},
				{ID: "2to6", Label: i18n.Text{EN: "2–6 months", AR: "من شهرين إلى 6 أشهر"}, Score: 3},
				{ID: "gt6", Label: i18n.Text{EN: "More than 6 months", AR: "أكثر من 6 أشهر"}, Score: 4},
			},
		},
		{
			ID:    "symptoms",
			Title: i18n.Text{EN: "Any scalp symptoms?", AR: "هل توجد أعراض بفروة الرأس؟"},
			Options: []Option{
				{ID: "none", Label: i18n.Text{EN: "No", AR: "لا"}, Score: 0},
				{ID: "itch", Label: i18n.Text{EN: "Itching / dandruff", AR: "حكة / قشرة"}, Score: 2},
				{
					ID:    "pain",
					Label: i18n.Text{EN: "Pain / burning", AR: "ألم / حرقان"},
					Score: 4,
					RedFlag: &i18n.Text{
						EN: "Pain or burning can signal inflammatory scalp conditions that warrant assessment.",
						AR: "الألم أو الحرقان قد يشير إلى التهاب بفروة الرأس ويستدعي تقييمًا.",
					},
				},
			},
		},
		{
			ID:    "context",
			Title: i18n.Text{EN: "Any recent trigger in the last 3–4 months?", AR: "هل حدث عامل مُحفّز خلال 3–4 أشهر؟"},
			Helper: &i18n.Text{
				EN: "Examples: stress, illness, surgery, rapid weight change, postpartum.",
				AR: "مثل: توتر شديد، مرض، عملية، تغير وزن سريع، بعد الولادة.",
			},
			Options: []Option{
				{ID: "no", Label: i18n.Text{EN: "No / not sure", AR: "لا / غير متأكد"}, Score: 1},
				{ID: "yes", Label: i18n.Text{EN: "Yes", AR: "نعم"}, Score: 2},
			},
		},
	},
	profile: profile{
		highThreshold: 12,
		midThreshold:  7,
		summaries: map[Level]i18n.Text{
			LevelPriority: {
				EN: "Your answers suggest a pattern that benefits from timely evaluation.",
				AR: "تشير إجاباتك إلى نمط قد يستفيد من تقييم في وقت قريب.",
			},
			LevelEvaluation: {
				EN: "Your answers suggest hair shedding that may benefit from structured assessment.",
				AR: "تشير إجاباتك إلى تساقط قد يستفيد من تقييم منظم.",
			},
			LevelInformational: {
				EN: "Your answers suggest a mild or early shedding pattern.",
				AR: "تشير إجاباتك إلى نمط تساقط خفيف أو مبكر.",
			},
		},
		explanation: i18n.Text{
			EN: "Hair loss often reflects more than one factor. A structured approach focuses on pattern, timeline, scalp health, and medical context — then selects investigations or treatments only when appropriate.",
			AR: "غالبًا ما ينتج تساقط الشعر عن أكثر من عامل. النهج المنظم يركز على النمط والزمن وصحة فروة الرأس والسياق الطبي، ثم يحدد الفحوصات أو العلاج عند الحاجة.",
		},
		baseSteps: []i18n.Text{
			{
				EN: "Avoid aggressive pulling, heat, or frequent harsh chemical treatments.",
				AR: "تجنب الشد القوي والحرارة والمواد الكيميائية القاسية بشكل متكرر.",
			},
			{
				EN: "Prioritize scalp health: manage dandruff/itch when present.",
				AR: "اهتم بصحة فروة الرأس وعلاج القشرة/الحكة عند وجودها.",
			},
		},
		monitorStep: i18n.Text{
			EN: "If shedding persists beyond 8–12 weeks, consider evaluation.",
			AR: "إذا استمر التساقط لأكثر من 8–12 أسبوعًا، فكّر في تقييم متخصص.",
		},
		consultStep: i18n.Text{
			EN: "Consider a consultation for pattern assessment and tailored plan.",
			AR: "قد يفيد حجز استشارة لتقييم النمط ووضع خطة مناسبة.",
		},
	},
}
