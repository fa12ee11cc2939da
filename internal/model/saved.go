package model

import (
	"fmt"

	"dermclinic/internal/i18n"
	"dermclinic/internal/insight"
)

// SavedInsight is one remembered evaluation result for a visitor. Only the
// lightweight header is kept (module, time, tier, summary); the full result
// is recomputed on demand since evaluation is pure.
type SavedInsight struct {
	ID      string        `json:"id"`
	Module  string        `json:"module"`
	At      int64         `json:"at"` // unix milliseconds
	Level   insight.Level `json:"level"`
	Summary i18n.Text     `json:"summary"`
}

// SavedInsightID derives the stable id for a saved entry, so re-saving the
// same run replaces rather than duplicates it.
func SavedInsightID(module string, at int64) string {
	return fmt.Sprintf("%s:%d", module, at)
}
