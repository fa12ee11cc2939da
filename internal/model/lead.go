package model

import (
	"time"

	"dermclinic/internal/i18n"
)

// Lead is a clinical-summary request captured from the Insights tool: the
// visitor asks for a human follow-up after running a module, so the record
// carries the module condition and the tier they landed on as context.
type Lead struct {
	ID        string      `json:"id" bson:"_id"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	Name      string      `json:"name" bson:"name"`
	Email     string      `json:"email" bson:"email"`
	Phone     string      `json:"phone,omitempty" bson:"phone,omitempty"`
	Condition string      `json:"condition" bson:"condition"`
	Level     string      `json:"level,omitempty" bson:"level,omitempty"`
	Locale    i18n.Locale `json:"locale,omitempty" bson:"locale,omitempty"`
}
