package insight

import "dermclinic/internal/i18n"

var acne = &Module{
	Slug:  "acne",
	Title: i18n.Text{EN: "Acne Insight", AR: "إرشادات حب الشباب"},
	Description: i18n.Text{
		EN: "A structured, educational tool to understand patterns and when a medical review is helpful.",
		AR: "أداة تعليمية منظمة لفهم نمط الحالة ومتى قد يفيد التقييم الطبي.",
	},
	Questions: []Question{
		{
			ID:    "duration",
			Title: i18n.Text{EN: "How long have the breakouts been present?", AR: "منذ متى توجد الحبوب؟"},
			Options: []Option{
				{ID: "lt3", Label: i18n.Text{EN: "Less than 3 months", AR: "أقل من 3 أشهر"}, Score: 1},
				{ID: "3to12", Label: i18n.Text{EN: "3–12 months", AR: "من 3 إلى 12 شهرًا"}, Score: 3},
				{ID: "gt12", Label: i18n.Text{EN: "More than 1 year", AR: "أكثر من سنة"}, Score: 4},
			},
		},
		{
			ID:    "location",
			Title: i18n.Text{EN: "Where is it most prominent?", AR: "أين تتركز أكثر؟"},
			Options: []Option{
				{ID: "forehead", Label: i18n.Text{EN: "Forehead / T‑zone", AR: "الجبهة / منطقة الـT"}, Score: 1},
				{ID: "cheeks", Label: i18n.Text{EN: "Cheeks", AR: "الخدين"}, Score: 2},
				{ID: "jaw", Label: i18n.Text{EN: "Jawline / chin", AR: "الفك / الذقن"}, Score: 3},
				{ID: "trunk", Label: i18n.Text{EN: "Back / chest", AR: "الظهر / الصدر"}, Score: 3},
			},
		},
		{
			ID:    "type",
			Title: i18n.Text{EN: "What describes the lesions best?", AR: "ما الوصف الأقرب للحبوب؟"},
			Options: []Option{
				{ID: "comedones", Label: i18n.Text{EN: "Mostly blackheads / whiteheads", AR: "رؤوس سوداء / بيضاء"}, Score: 1},
				{ID: "inflamed", Label: i18n.Text{EN: "Inflamed bumps / pustules", AR: "حبوب ملتهبة"}, Score: 3},
				{
					ID:    "nodules",
					Label: i18n.Text{EN: "Deep painful nodules", AR: "عُقَد مؤلمة عميقة"},
					Score: 5,
					RedFlag: &i18n.Text{
						EN: "Painful deep nodules and early scarring benefit from earlier medical evaluation.",
						AR: "العُقَد المؤلمة العميقة وبدء الندبات قد تستدعي تقييمًا طبيًا مبكرًا.",
					},
				},
			},
		},
		{
			ID:    "marks",
			Title: i18n.Text{EN: "Do you notice marks or scarring?", AR: "هل توجد آثار أو ندبات؟"},
			Options: []Option{
				{ID: "none", Label: i18n.Text{EN: "No", AR: "لا"}, Score: 0},
				{ID: "pigment", Label: i18n.Text{EN: "Post‑inflammatory marks", AR: "آثار تصبغ بعد الالتهاب"}, Score: 2},
				{
					ID:    "scar",
					Label: i18n.Text{EN: "Scarring", AR: "ندبات"},
					Score: 5,
					RedFlag: &i18n.Text{
						EN: "When scarring is developing, early structured treatment can reduce long‑term impact.",
						AR: "عند بدء الندبات، قد يقلّل التدخل المنظم مبكرًا من الأثر طويل المدى.",
					},
				},
			},
		},
		{
			ID:    "treat",
			Title: i18n.Text{EN: "What best describes prior treatment?", AR: "ما وصف العلاج السابق؟"},
			Options: []Option{
				{ID: "none", Label: i18n.Text{EN: "None / minimal", AR: "لا يوجد / بسيط"}, Score: 1},
				{ID: "otc", Label: i18n.Text{EN: "Over‑the‑counter products", AR: "منتجات بدون وصفة"}, Score: 2},
				{ID: "rx", Label: i18n.Text{EN: "Prescription treatment in the past", AR: "علاج بوصفة سابقًا"}, Score: 2},
			},
		},
	},
	profile: profile{
		// thresholds tuned for educational triage, not diagnosis
		highThreshold: 14,
		midThreshold:  9,
		summaries: map[Level]i18n.Text{
			LevelPriority: {
				EN: "Your answers suggest a more persistent or inflammatory acne pattern.",
				AR: "تشير إجاباتك إلى نمط حب شباب أكثر استمرارية أو التهابيًا.",
			},
			LevelEvaluation: {
				EN: "Your answers suggest acne that may benefit from a structured plan.",
				AR: "تشير إجاباتك إلى حب شباب قد يستفيد من خطة علاج منظمة.",
			},
			LevelInformational: {
				EN: "Your answers suggest a milder breakout pattern.",
				AR: "تشير إجاباتك إلى نمط حبوب خفيف نسبيًا.",
			},
		},
		explanation: i18n.Text{
			EN: "Acne can behave like a chronic inflammatory condition. When lesions persist, become painful, or leave marks, intermittent product changes often underperform compared with structured medical planning.",
			AR: "قد يتصرف حب الشباب كحالة التهابية مزمنة. عند استمرار الحبوب أو ألمها أو تركها آثارًا، غالبًا ما يكون النهج المنظم أكثر فعالية من تغيير المنتجات بشكل متكرر.",
		},
		baseSteps: []i18n.Text{
			{
				EN: "Keep routines simple: gentle cleanser, non‑comedogenic moisturizer, daily sunscreen.",
				AR: "اجعل الروتين بسيطًا: غسول لطيف، مرطب مناسب، واقي شمس يوميًا.",
			},
			{
				EN: "Avoid frequent “rotation” of active products when irritation is present.",
				AR: "تجنب تبديل العلاجات النشطة بشكل متكرر خاصة عند وجود تهيج.",
			},
		},
		monitorStep: i18n.Text{
			EN: "If breakouts persist beyond 8–12 weeks, consider a professional evaluation.",
			AR: "إذا استمرت الحبوب لأكثر من 8–12 أسبوعًا، فكّر في تقييم متخصص.",
		},
		consultStep: i18n.Text{
			EN: "Consider a consultation for a structured plan and follow‑up.",
			AR: "قد يفيد حجز استشارة لوضع خطة منظمة ومتابعة.",
		},
	},
}
