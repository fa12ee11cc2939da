package insight

import "dermclinic/internal/i18n"

var psoriasis = &Module{
	Slug:  "psoriasis",
	Title: i18n.Text{EN: "Psoriasis Insight", AR: "إرشادات الصدفية"},
	Description: i18n.Text{
		EN: "A structured guide to plaque patterns, scalp/nail involvement, and when a broader plan is helpful.",
		AR: "دليل منظم لأنماط اللويحات ومشاركة فروة الرأس أو الأظافر ومتى تكون الخطة الأوسع مفيدة.",
	},
	Questions: []Question{
		{
			ID:    "plaques",
			Title: i18n.Text{EN: "What best describes the skin changes?", AR: "ما الوصف الأقرب لتغيرات الجلد؟"},
			Options: []Option{
				{ID: "small", Label: i18n.Text{EN: "Small dry plaques", AR: "لويحات صغيرة جافة"}, Score: 2},
				{ID: "thick", Label: i18n.Text{EN: "Thicker/scaly plaques", AR: "لويحات أكثر سماكة وتقشرًا"}, Score: 4},
				{ID: "widespread", Label: i18n.Text{EN: "Multiple or widespread plaques", AR: "لويحات متعددة أو واسعة"}, Score: 5},
			},
		},
		{
			ID:    "sites",
			Title: i18n.Text{EN: "Where is it affecting you most?", AR: "أين تؤثر أكثر؟"},
			Options: []Option{
				{ID: "limited", Label: i18n.Text{EN: "Elbows/knees only", AR: "الأكواع/الركبتان فقط"}, Score: 2},
				{ID: "scalp", Label: i18n.Text{EN: "Scalp or face involvement", AR: "فروة الرأس أو الوجه"}, Score: 4},
				{ID: "nails", Label: i18n.Text{EN: "Nails and other areas too", AR: "الأظافر ومناطق أخرى أيضًا"}, Score: 5},
			},
		},
		{
			ID:    "joints",
			Title: i18n.Text{EN: "Any joint symptoms with the skin disease?", AR: "هل توجد أعراض بالمفاصل مع الجلد؟"},
			Options: []Option{
				{ID: "no", Label: i18n.Text{EN: "No", AR: "لا"}, Score: 0},
				{ID: "some", Label: i18n.Text{EN: "Some stiffness/ache", AR: "تيبس/ألم بسيط"}, Score: 4},
				{
					ID:    "clear",
					Label: i18n.Text{EN: "Clear swelling or morning stiffness", AR: "تورم واضح أو تيبس صباحي"},
					Score: 7,
					RedFlag: &i18n.Text{
						EN: "Joint symptoms alongside psoriasis should be assessed clinically.",
						AR: "وجود أعراض بالمفاصل مع الصدفية يستدعي تقييمًا إكلينيكيًا.",
					},
				},
			},
		},
		{
			ID:    "control",
			Title: i18n.Text{EN: "How has it responded to treatment so far?", AR: "كيف كانت الاستجابة للعلاج حتى الآن؟"},
			Options: []Option{
				{ID: "good", Label: i18n.Text{EN: "Usually controlled", AR: "غالبًا تحت السيطرة"}, Score: 1},
				{ID: "partial", Label: i18n.Text{EN: "Partial or short-lived control", AR: "تحكم جزئي أو مؤقت"}, Score: 3},
				{ID: "poor", Label: i18n.Text{EN: "Persistent despite treatment", AR: "مستمرة رغم العلاج"}, Score: 5},
			},
		},
	},
	profile: profile{
		highThreshold: 15,
		midThreshold:  9,
		summaries: map[Level]i18n.Text{
			LevelPriority: {
				EN: "Your answers suggest psoriasis that may benefit from earlier review.",
				AR: "تشير إجاباتك إلى صدفية قد تستفيد من مراجعة مبكرة.",
			},
			LevelEvaluation: {
				EN: "Your answers suggest psoriasis that may benefit from a more structured plan.",
				AR: "تشير إجاباتك إلى صدفية قد تستفيد من خطة أكثر تنظيمًا.",
			},
			LevelInformational: {
				EN: "Your answers suggest a limited psoriasis pattern.",
				AR: "تشير إجاباتك إلى نمط صدفية محدود.",
			},
		},
		explanation: i18n.Text{
			EN: "Psoriasis is usually managed as a chronic inflammatory condition. Extent, scalp or nail involvement, and joint symptoms all influence how intensive treatment needs to be.",
			AR: "تُدار الصدفية عادة كحالة التهابية مزمنة. مدى الانتشار، ومشاركة فروة الرأس أو الأظافر، وأعراض المفاصل كلها تؤثر على شدة الخطة العلاجية.",
		},
		baseSteps: []i18n.Text{
			{
				EN: "Keep routines consistent and avoid picking or overly aggressive scrubbing of plaques.",
				AR: "حافظ على روتين ثابت وتجنب العبث باللويحات أو فركها بعنف.",
			},
			{
				EN: "Note whether scalp, nails, or joints are affected, since that changes planning.",
				AR: "سجل ما إذا كانت فروة الرأس أو الأظافر أو المفاصل متأثرة لأن ذلك يغير الخطة.",
			},
		},
		monitorStep: i18n.Text{
			EN: "If plaques spread or recur frequently, consider evaluation.",
			AR: "إذا انتشرت اللويحات أو تكررت كثيرًا، فكّر في تقييم متخصص.",
		},
		consultStep: i18n.Text{
			EN: "Consider a consultation to assess extent and decide whether broader control is needed.",
			AR: "قد يفيد حجز استشارة لتقييم مدى الحالة وتحديد الحاجة لخطة أوسع.",
		},
	},
}
