package insight

import "dermclinic/internal/i18n"

var whenToConsult = &Module{
	Slug:  "when-to-consult",
	Title: i18n.Text{EN: "When to Consult", AR: "متى أزور طبيب الجلدية؟"},
	Description: i18n.Text{
		EN: "A structured guide to help decide when professional evaluation is recommended.",
		AR: "دليل منظم يساعد على تحديد متى يُنصح بزيارة طبيب الجلدية.",
	},
	Questions: []Question{
		{
			ID:    "duration",
			Title: i18n.Text{EN: "How long has the issue been present?", AR: "منذ متى توجد المشكلة؟"},
			Options: []Option{
				{ID: "lt2w", Label: i18n.Text{EN: "Less than 2 weeks", AR: "أقل من أسبوعين"}, Score: 1},
				{ID: "2to8w", Label: i18n.Text{EN: "2–8 weeks", AR: "من أسبوعين إلى 8 أسابيع"}, Score: 3},
				{ID: "gt8w", Label: i18n.Text{EN: "More than 8 weeks", AR: "أكثر من 8 أسابيع"}, Score: 4},
			},
		},
		{
			ID:    "symptoms",
			Title: i18n.Text{EN: "Any of the following?", AR: "هل يوجد أي مما يلي؟"},
			Helper: &i18n.Text{
				EN: "Rapid change, bleeding, severe pain, widespread rash, or fever.",
				AR: "تغير سريع، نزف، ألم شديد، طفح منتشر، أو حرارة.",
			},
			Options: []Option{
				{ID: "no", Label: i18n.Text{EN: "No", AR: "لا"}, Score: 0},
				{
					ID:    "yes",
					Label: i18n.Text{EN: "Yes", AR: "نعم"},
					Score: 8,
					RedFlag: &i18n.Text{
						EN: "If there is rapid change, bleeding, severe pain, widespread rash, or fever, seek prompt evaluation.",
						AR: "عند وجود تغير سريع أو نزف أو ألم شديد أو طفح منتشر أو حرارة، يُنصح بتقييم عاجل.",
					},
				},
			},
		},
		{
			ID:    "impact",
			Title: i18n.Text{EN: "How much does it affect daily life?", AR: "ما مدى تأثيرها على الحياة اليومية؟"},
			Options: []Option{
				{ID: "low", Label: i18n.Text{EN: "Mild", AR: "بسيط"}, Score: 1},
				{ID: "mid", Label: i18n.Text{EN: "Moderate", AR: "متوسط"}, Score: 2},
				{ID: "high", Label: i18n.Text{EN: "High", AR: "شديد"}, Score: 4},
			},
		},
	},
	profile: profile{
		highThreshold: 10,
		midThreshold:  6,
		summaries: map[Level]i18n.Text{
			LevelPriority: {
				EN: "Your answers suggest you should seek evaluation promptly.",
				AR: "تشير إجاباتك إلى أن التقييم العاجل قد يكون مناسبًا.",
			},
			LevelEvaluation: {
				EN: "Your answers suggest a consultation may be helpful.",
				AR: "تشير إجاباتك إلى أن الاستشارة قد تكون مفيدة.",
			},
			LevelInformational: {
				EN: "Your answers suggest monitoring may be reasonable.",
				AR: "تشير إجاباتك إلى أن المتابعة قد تكون كافية.",
			},
		},
		explanation: i18n.Text{
			EN: "Many skin concerns improve with time and basic care. Persistent problems, rapid change, significant symptoms, or high impact on daily life are good reasons to seek professional evaluation.",
			AR: "قد تتحسن كثير من مشكلات الجلد مع الوقت والرعاية الأساسية. لكن الاستمرار أو التغير السريع أو الأعراض الشديدة أو التأثير الكبير على الحياة اليومية هي أسباب وجيهة لطلب تقييم متخصص.",
		},
		// All three steps apply regardless of tier, so there is no closing
		// monitor/consult variant here.
		baseSteps: []i18n.Text{
			{
				EN: "If you notice rapid change, bleeding, or severe symptoms, seek prompt evaluation.",
				AR: "عند وجود تغير سريع أو نزف أو أعراض شديدة، يُنصح بتقييم عاجل.",
			},
			{
				EN: "If the issue persists beyond several weeks, a structured assessment can clarify the diagnosis.",
				AR: "إذا استمرت المشكلة لعدة أسابيع، قد يفيد تقييم منظم لتوضيح التشخيص.",
			},
			{
				EN: "Bring photos (if changes fluctuate) and a list of products/medications used.",
				AR: "أحضر صورًا (إن كانت الحالة تتغير) وقائمة بالمنتجات/الأدوية المستخدمة.",
			},
		},
	},
}
