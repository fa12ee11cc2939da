package i18n

// Locale identifies one of the two supported site languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// Locales lists the supported locales in display order.
var Locales = []Locale{LocaleEN, LocaleAR}

// DefaultLocale is used when a request carries no usable locale.
const DefaultLocale = LocaleEN

// Parse returns the locale for value, falling back to the default.
func Parse(value string) Locale {
	if Locale(value) == LocaleAR {
		return LocaleAR
	}
	return LocaleEN
}

// IsLocale reports whether value names a supported locale.
func IsLocale(value string) bool {
	for _, l := range Locales {
		if string(l) == value {
			return true
		}
	}
	return false
}

// Direction returns the writing direction for a locale.
func Direction(locale Locale) string {
	if locale == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// Text is a bilingual string pair. Every user-facing string in the system
// carries both languages; consumers pick a side at render time.
type Text struct {
	EN string `json:"en" bson:"en"`
	AR string `json:"ar" bson:"ar"`
}

// In returns the variant for the given locale.
func (t Text) In(locale Locale) string {
	if locale == LocaleAR {
		return t.AR
	}
	return t.EN
}

// IsZero reports whether both variants are empty.
func (t Text) IsZero() bool {
	return t.EN == "" && t.AR == ""
}

// Lines is a bilingual list pair. The two slices are kept in parallel: the
// i-th English line corresponds to the i-th Arabic line.
type Lines struct {
	EN []string `json:"en" bson:"en"`
	AR []string `json:"ar" bson:"ar"`
}

// In returns the list for the given locale.
func (l Lines) In(locale Locale) []string {
	if locale == LocaleAR {
		return l.AR
	}
	return l.EN
}

// IsEmpty reports whether both lists are empty.
func (l Lines) IsEmpty() bool {
	return len(l.EN) == 0 && len(l.AR) == 0
}

// Append adds one bilingual line to both lists.
func (l *Lines) Append(t Text) {
	l.EN = append(l.EN, t.EN)
	l.AR = append(l.AR, t.AR)
}
