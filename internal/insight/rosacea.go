package insight

import "dermclinic/internal/i18n"

var rosacea = &Module{
	Slug:  "rosacea",
	Title: i18n.Text{EN: "Rosacea & Redness Insight", AR: "إرشادات الوردية والاحمرار"},
	Description: i18n.Text{
		EN: "A structured guide to understand facial redness, flushing triggers, and when evaluation helps.",
		AR: "دليل منظم لفهم احمرار الوجه ومحفزات التورد ومتى يفيد التقييم المتخصص.",
	},
	Questions: []Question{
		{
			ID:    "pattern",
			Title: i18n.Text{EN: "What best describes the redness?", AR: "ما الوصف الأقرب للاحمرار؟"},
			Options: []Option{
				{ID: "episodic", Label: i18n.Text{EN: "Comes and goes", AR: "يظهر ويختفي"}, Score: 2},
				{ID: "persistent", Label: i18n.Text{EN: "Persistent central facial redness", AR: "احمرار مستمر بمنتصف الوجه"}, Score: 4},
				{ID: "bumps", Label: i18n.Text{EN: "Redness with bumps/pustules", AR: "احمرار مع حبوب/بثور"}, Score: 5},
			},
		},
		{
			ID:    "triggers",
			Title: i18n.Text{EN: "Do common triggers make it worse?", AR: "هل تزيدها المحفزات الشائعة؟"},
			Helper: &i18n.Text{
				EN: "Examples: heat, sun, spicy food, hot drinks, stress.",
				AR: "مثل: الحرارة، الشمس، الأكل الحار، المشروبات الساخنة، التوتر.",
			},
			Options: []Option{
				{ID: "no", Label: i18n.Text{EN: "Not clearly", AR: "ليس بوضوح"}, Score: 1},
				{ID: "some", Label: i18n.Text{EN: "Sometimes", AR: "أحيانًا"}, Score: 2},
				{ID: "yes", Label: i18n.Text{EN: "Yes, clearly", AR: "نعم بوضوح"}, Score: 3},
			},
		},
		{
			ID:    "sensitivity",
			Title: i18n.Text{EN: "How reactive is the skin?", AR: "ما مدى حساسية الجلد؟"},
			Options: []Option{
				{ID: "mild", Label: i18n.Text{EN: "Mild sensitivity", AR: "حساسية بسيطة"}, Score: 1},
				{ID: "sting", Label: i18n.Text{EN: "Burning/stinging with products", AR: "حرقان/لسع مع المنتجات"}, Score: 3},
				{ID: "severe", Label: i18n.Text{EN: "Frequent irritation and flushing", AR: "تهيج وتورد متكرر"}, Score: 4},
			},
		},
		{
			ID:    "eyes",
			Title: i18n.Text{EN: "Any eye symptoms with it?", AR: "هل توجد أعراض بالعين مع الاحمرار؟"},
			Options: []Option{
				{ID: "no", Label: i18n.Text{EN: "No", AR: "لا"}, Score: 0},
				{ID: "mild", Label: i18n.Text{EN: "Dry/gritty eyes", AR: "جفاف/إحساس بالرمل"}, Score: 3},
				{
					ID:    "pain",
					Label: i18n.Text{EN: "Painful or very irritated eyes", AR: "ألم أو تهيج شديد بالعين"},
					Score: 6,
					RedFlag: &i18n.Text{
						EN: "Eye irritation with facial redness can benefit from earlier medical assessment.",
						AR: "أعراض العين مع احمرار الوجه قد تستفيد من تقييم طبي مبكر.",
					},
				},
			},
		},
	},
	profile: profile{
		highThreshold: 13,
		midThreshold:  8,
		summaries: map[Level]i18n.Text{
			LevelPriority: {
				EN: "Your answers suggest redness that may benefit from earlier evaluation.",
				AR: "تشير إجاباتك إلى احمرار قد يستفيد من تقييم مبكر.",
			},
			LevelEvaluation: {
				EN: "Your answers suggest a rosacea-like pattern that may benefit from a structured plan.",
				AR: "تشير إجاباتك إلى نمط يشبه الوردية وقد يستفيد من خطة منظمة.",
			},
			LevelInformational: {
				EN: "Your answers suggest a mild redness/flushing pattern.",
				AR: "تشير إجاباتك إلى نمط احمرار/تورد خفيف.",
			},
		},
		explanation: i18n.Text{
			EN: "Facial redness is often trigger-sensitive. Consistent sun protection, gentle skincare, and identifying flushing triggers usually matter more than frequent product changes.",
			AR: "غالبًا ما يكون احمرار الوجه حساسًا للمحفزات. واقي الشمس المنتظم، والروتين اللطيف، ومعرفة المحفزات أهم عادة من تبديل المنتجات بشكل متكرر.",
		},
		baseSteps: []i18n.Text{
			{
				EN: "Use gentle skincare and daily sunscreen; avoid harsh scrubs and frequent exfoliation.",
				AR: "استخدم روتينًا لطيفًا وواقي شمس يوميًا وتجنب المقشرات القاسية.",
			},
			{
				EN: "Track common triggers such as heat, sun, spicy food, and stress.",
				AR: "راقب المحفزات الشائعة مثل الحرارة والشمس والأكل الحار والتوتر.",
			},
		},
		monitorStep: i18n.Text{
			EN: "If redness becomes persistent or develops bumps, consider evaluation.",
			AR: "إذا أصبح الاحمرار مستمرًا أو ظهر معه حبوب، فكّر في تقييم متخصص.",
		},
		consultStep: i18n.Text{
			EN: "Consider a consultation to confirm the pattern and tailor trigger-focused treatment.",
			AR: "قد يفيد حجز استشارة لتأكيد النمط ووضع علاج مناسب للمحفزات.",
		},
	},
}
