package i18n

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"en", LocaleEN},
		{"ar", LocaleAR},
		{"", LocaleEN},
		{"fr", LocaleEN},
		{"AR", LocaleEN}, // locales are lowercase on the wire
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if Direction(LocaleEN) != "ltr" {
		t.Errorf("Direction(en) = %q", Direction(LocaleEN))
	}
	if Direction(LocaleAR) != "rtl" {
		t.Errorf("Direction(ar) = %q", Direction(LocaleAR))
	}
}

func TestTextIn(t *testing.T) {
	txt := Text{EN: "hello", AR: "مرحبا"}
	if txt.In(LocaleEN) != "hello" {
		t.Errorf("In(en) = %q", txt.In(LocaleEN))
	}
	if txt.In(LocaleAR) != "مرحبا" {
		t.Errorf("In(ar) = %q", txt.In(LocaleAR))
	}
}

func TestLinesAppend(t *testing.T) {
	var l Lines
	l.Append(Text{EN: "one", AR: "واحد"})
	l.Append(Text{EN: "two", AR: "اثنان"})

	if len(l.In(LocaleEN)) != 2 || l.In(LocaleEN)[1] != "two" {
		t.Errorf("EN lines = %v", l.In(LocaleEN))
	}
	if len(l.In(LocaleAR)) != 2 || l.In(LocaleAR)[0] != "واحد" {
		t.Errorf("AR lines = %v", l.In(LocaleAR))
	}
	if l.IsEmpty() {
		t.Error("IsEmpty() = true after appends")
	}
}

func TestWhatsAppNumber(t *testing.T) {
	if WhatsAppNumber() != "201016006000" {
		t.Errorf("WhatsAppNumber() = %q, want digits without plus", WhatsAppNumber())
	}
}
