package i18n

import "strings"

// ClinicInfo holds the practice's public contact details, used when
// composing notification emails and WhatsApp deep links.
type ClinicInfo struct {
	BrandName     Text
	DoctorName    Text
	Title         Text
	PhoneE164     string
	WhatsAppE164  string
	Address       Text
	FacebookURL   string
	InstagramURL  string
}

var Clinic = ClinicInfo{
	BrandName:  Text{EN: "Dr. Islam El-Helou", AR: "د. إسلام الحلو"},
	DoctorName: Text{EN: "Islam El-Helou", AR: "إسلام الحلو"},
	Title: Text{
		EN: "Consultant Dermatology & Aesthetic Medicine",
		AR: "استشاري الأمراض الجلدية وطب التجميل",
	},
	PhoneE164:    "+201016006000",
	WhatsAppE164: "+201016006000",
	Address: Text{
		EN: "375 El Geish Road, Gleem, Alexandria, Egypt (In front of Gleem Bay)",
		AR: "٣٧٥ طريق الجيش، جليم، الإسكندرية، مصر (أمام جليم باي)",
	},
	FacebookURL:  "https://facebook.com/DrIslamElHelou",
	InstagramURL: "https://instagram.com/Dr.islam_elhelou",
}

// WhatsAppNumber returns the clinic WhatsApp number without the leading plus,
// as expected by wa.me links.
func WhatsAppNumber() string {
	return strings.TrimPrefix(Clinic.WhatsAppE164, "+")
}
