package insight

import "dermclinic/internal/i18n"

var pigmentation = &Module{
	Slug:  "pigmentation",
	Title: i18n.Text{EN: "Pigmentation Insight", AR: "إرشادات التصبغات"},
	Description: i18n.Text{
		EN: "Understand common pigmentation patterns and the role of sun protection and planning.",
		AR: "فهم أنماط التصبغات الشائعة ودور واقي الشمس والخطة العلاجية.",
	},
	Questions: []Question{
		{
			ID:    "onset",
			Title: i18n.Text{EN: "How did the pigmentation start?", AR: "كيف بدأت التصبغات؟"},
			Options: []Option{
				{ID: "gradual", Label: i18n.Text{EN: "Gradual", AR: "تدريجيًا"}, Score: 2},
				{ID: "afterInflamm", Label: i18n.Text{EN: "After acne/irritation", AR: "بعد حبوب/تهيج"}, Score: 3},
				{ID: "preg", Label: i18n.Text{EN: "During/after pregnancy or hormones", AR: "مع الحمل/الهرمونات"}, Score: 3},
			},
		},
		{
			ID:    "site",
			Title: i18n.Text{EN: "Where is it mainly located?", AR: "أين تتركز؟"},
			Options: []Option{
				{ID: "face", Label: i18n.Text{EN: "Face", AR: "الوجه"}, Score: 2},
				{ID: "body", Label: i18n.Text{EN: "Body / exposed areas", AR: "الجسم / مناطق مكشوفة"}, Score: 2},
				{
					ID:    "newMole",
					Label: i18n.Text{EN: "New changing spot / mole", AR: "بقعة/شامة جديدة تتغير"},
					Score: 6,
					RedFlag: &i18n.Text{
						EN: "A new or changing pigmented lesion should be assessed clinically.",
						AR: "أي بقعة مصطبغة جديدة أو متغيرة يُنصح بتقييمها إكلينيكيًا.",
					},
				},
			},
		},
		{
			ID:    "sun",
			Title: i18n.Text{EN: "How consistent is sun protection?", AR: "ما مدى الالتزام بواقي الشمس؟"},
			Options: []Option{
				{ID: "daily", Label: i18n.Text{EN: "Daily and re-applied", AR: "يوميًا مع إعادة"}, Score: 0},
				{ID: "sometimes", Label: i18n.Text{EN: "Sometimes", AR: "أحيانًا"}, Score: 2},
				{ID: "rare", Label: i18n.Text{EN: "Rarely", AR: "نادرًا"}, Score: 4},
			},
		},
		{
			ID:    "irritation",
			Title: i18n.Text{EN: "Do products cause irritation/burning?", AR: "هل تسبب المنتجات تهيجًا/حرقانًا؟"},
			Options: []Option{
				{ID: "no", Label: i18n.Text{EN: "No", AR: "لا"}, Score: 0},
				{ID: "some", Label: i18n.Text{EN: "Occasionally", AR: "أحيانًا"}, Score: 2},
				{ID: "yes", Label: i18n.Text{EN: "Frequently", AR: "غالبًا"}, Score: 3},
			},
		},
	},
	profile: profile{
		highThreshold: 12,
		midThreshold:  7,
		summaries: map[Level]i18n.Text{
			LevelPriority: {
				EN: "Your answers suggest pigmentation that benefits from professional evaluation.",
				AR: "تشير إجاباتك إلى تصبغات قد تستفيد من تقييم متخصص.",
			},
			LevelEvaluation: {
				EN: "Your answers suggest pigmentation that may benefit from a structured plan.",
				AR: "تشير إجاباتك إلى تصبغات قد تستفيد من خطة منظمة.",
			},
			LevelInformational: {
				EN: "Your answers suggest a mild pigmentation pattern.",
				AR: "تشير إجاباتك إلى تصبغات خفيفة نسبيًا.",
			},
		},
		explanation: i18n.Text{
			EN: "Pigmentation improves best with consistency: sun protection, barrier-friendly routines, and stepwise treatment. Irritation can worsen pigmentation, so planning matters more than intensity.",
			AR: "تتحسن التصبغات أكثر بالاستمرارية: واقي الشمس، روتين لطيف يحافظ على الحاجز، وعلاج تدريجي. التهيج قد يزيد التصبغ، لذا التخطيط أهم من الشدة.",
		},
		baseSteps: []i18n.Text{
			{
				EN: "Use broad-spectrum sunscreen daily and re-apply with outdoor exposure.",
				AR: "استخدم واقي شمس واسع الطيف يوميًا وأعد وضعه عند التعرض للشمس.",
			},
			{
				EN: "Avoid aggressive actives if irritation occurs; support the skin barrier first.",
				AR: "تجنب العلاجات القوية عند حدوث تهيج وابدأ بدعم حاجز الجلد.",
			},
		},
		monitorStep: i18n.Text{
			EN: "If pigmentation persists or spreads, consider evaluation to tailor a plan.",
			AR: "إذا استمر التصبغ أو زاد، قد يفيد التقييم لتحديد خطة.",
		},
		consultStep: i18n.Text{
			EN: "Consider a consultation to confirm the pattern and build a stepwise plan.",
			AR: "قد يفيد حجز استشارة لتأكيد النمط ووضع خطة تدريجية.",
		},
	},
}
