package insight

import "dermclinic/internal/i18n"

var eczema = &Module{
	Slug:  "eczema",
	Title: i18n.Text{EN: "Eczema Insight", AR: "إرشادات الإكزيما"},
	Description: i18n.Text{
		EN: "A structured guide to itch, dryness, flare patterns, and when earlier review is useful.",
		AR: "دليل منظم للحكة والجفاف ونمط النوبات ومتى تكون المراجعة المبكرة مفيدة.",
	},
	Questions: []Question{
		{
			ID:    "itch",
			Title: i18n.Text{EN: "How troublesome is the itch?", AR: "ما شدة الحكة؟"},
			Options: []Option{
				{ID: "mild", Label: i18n.Text{EN: "Mild", AR: "بسيطة"}, Score: 1},
				{ID: "moderate", Label: i18n.Text{EN: "Moderate", AR: "متوسطة"}, Score: 3},
				{ID: "severe", Label: i18n.Text{EN: "Severe / disturbing sleep", AR: "شديدة / تؤثر على النوم"}, Score: 5},
			},
		},
		{
			ID:    "pattern",
			Title: i18n.Text{EN: "What best describes the rash?", AR: "ما الوصف الأقرب للطفح؟"},
			Options: []Option{
				{ID: "dry", Label: i18n.Text{EN: "Dry, rough patches", AR: "بقع جافة وخشنة"}, Score: 2},
				{ID: "recurrent", Label: i18n.Text{EN: "Recurrent flares", AR: "نوبات متكررة"}, Score: 3},
				{
					ID:    "oozing",
					Label: i18n.Text{EN: "Crusting/oozing areas", AR: "مناطق بها إفرازات/قشور"},
					Score: 6,
					RedFlag: &i18n.Text{
						EN: "Oozing or crusted eczema can need earlier review to assess infection or stronger inflammation.",
						AR: "الإكزيما المصحوبة بإفرازات أو قشور قد تحتاج مراجعة مبكرة لتقييم العدوى أو شدة الالتهاب.",
					},
				},
			},
		},
		{
			ID:    "spread",
			Title: i18n.Text{EN: "How widespread is it?", AR: "ما مدى انتشارها؟"},
			Options: []Option{
				{ID: "small", Label: i18n.Text{EN: "Small areas only", AR: "مناطق محدودة"}, Score: 1},
				{ID: "several", Label: i18n.Text{EN: "Several body areas", AR: "عدة مناطق بالجسم"}, Score: 3},
				{ID: "large", Label: i18n.Text{EN: "Large/widespread areas", AR: "مناطق واسعة/منتشرة"}, Score: 5},
			},
		},
		{
			ID:    "response",
			Title: i18n.Text{EN: "How has basic care worked so far?", AR: "كيف كانت الاستجابة للعناية الأساسية؟"},
			Helper: &i18n.Text{
				EN: "Examples: moisturizer, fragrance avoidance, gentle cleansers.",
				AR: "مثل: الترطيب، تجنب العطور، واستخدام غسول لطيف.",
			},
			Options: []Option{
				{ID: "better", Label: i18n.Text{EN: "It improved", AR: "تحسنت"}, Score: 1},
				{ID: "partial", Label: i18n.Text{EN: "Only partial improvement", AR: "تحسن جزئي فقط"}, Score: 3},
				{ID: "none", Label: i18n.Text{EN: "Little or no improvement", AR: "تحسن بسيط جدًا أو لا يوجد"}, Score: 4},
			},
		},
	},
	profile: profile{
		highThreshold: 14,
		midThreshold:  9,
		summaries: map[Level]i18n.Text{
			LevelPriority: {
				EN: "Your answers suggest eczema that may benefit from earlier medical review.",
				AR: "تشير إجاباتك إلى إكزيما قد تستفيد من مراجعة طبية مبكرة.",
			},
			LevelEvaluation: {
				EN: "Your answers suggest eczema that may benefit from a structured treatment plan.",
				AR: "تشير إجاباتك إلى إكزيما قد تستفيد من خطة علاج منظمة.",
			},
			LevelInformational: {
				EN: "Your answers suggest a mild eczema pattern.",
				AR: "تشير إجاباتك إلى نمط إكزيما خفيف.",
			},
		},
		explanation: i18n.Text{
			EN: "Eczema control usually depends on barrier repair, trigger reduction, and timely treatment during flares. Recurrent or widespread disease often needs a more structured plan.",
			AR: "يعتمد التحكم في الإكزيما غالبًا على إصلاح حاجز الجلد وتقليل المحفزات والعلاج المناسب أثناء النوبات. الحالات المتكررة أو الواسعة قد تحتاج خطة أكثر تنظيمًا.",
		},
		baseSteps: []i18n.Text{
			{
				EN: "Prioritize frequent moisturizer use and avoid fragranced or harsh products.",
				AR: "اهتم باستخدام المرطب بانتظام وتجنب المنتجات المعطرة أو القاسية.",
			},
			{
				EN: "Use lukewarm showers and reduce friction from scratching when possible.",
				AR: "استخدم ماءً فاترًا وقلل الاحتكاك الناتج عن الحك قدر الإمكان.",
			},
		},
		monitorStep: i18n.Text{
			EN: "If flares become frequent or spread, consider evaluation.",
			AR: "إذا أصبحت النوبات متكررة أو منتشرة، فكّر في تقييم متخصص.",
		},
		consultStep: i18n.Text{
			EN: "Consider a consultation to confirm the trigger pattern and adjust treatment intensity.",
			AR: "قد يفيد حجز استشارة لتحديد المحفزات وضبط شدة العلاج.",
		},
	},
}
