package model

import "strings"

// Severity is the clinical risk level of an interaction
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
)

// ParseSeverity maps a case-insensitive level name onto a Severity
func ParseSeverity(level string) (Severity, bool) {
	for _, s := range []Severity{SeverityLow, SeverityModerate, SeverityHigh} {
		if strings.EqualFold(strings.TrimSpace(level), string(s)) {
			return s, true
		}
	}
	return "", false
}

// DrugInteraction is a pairwise interaction; recomputed on every check
type DrugInteraction struct {
	Drugs          []string `json:"drugs"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// SamePair reports whether both interactions name the same unordered drug pair.
// Names compare case-insensitively after trimming.
func (d DrugInteraction) SamePair(other DrugInteraction) bool {
	if len(d.Drugs) != 2 || len(other.Drugs) != 2 {
		return false
	}
	a0, a1 := NormalizeDrug(d.Drugs[0]), NormalizeDrug(d.Drugs[1])
	b0, b1 := NormalizeDrug(other.Drugs[0]), NormalizeDrug(other.Drugs[1])
	return (a0 == b0 && a1 == b1) || (a0 == b1 && a1 == b0)
}

// Normalize trims the entry and canonicalizes its severity. It reports
// false when the entry does not name exactly two drugs, has an unknown
// severity or carries no description.
func (d DrugInteraction) Normalize() (DrugInteraction, bool) {
	if len(d.Drugs) != 2 {
		return d, false
	}
	a, b := strings.TrimSpace(d.Drugs[0]), strings.TrimSpace(d.Drugs[1])
	if a == "" || b == "" {
		return d, false
	}
	severity, ok := ParseSeverity(string(d.Severity))
	if !ok {
		return d, false
	}
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return d, false
	}
	return DrugInteraction{
		Drugs:          []string{a, b},
		Severity:       severity,
		Description:    description,
		Recommendation: strings.TrimSpace(d.Recommendation),
	}, true
}

// NormalizeDrug lower-cases and trims a drug name
func NormalizeDrug(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// InteractionReport is the response of an interaction check
type InteractionReport struct {
	Interactions    []DrugInteraction `json:"interactions"`
	TotalChecked    int               `json:"totalChecked"`
	HasInteractions bool              `json:"hasInteractions"`
}

// DrugInfo is a drug monograph produced by the model. When the completion
// cannot be parsed only RawInfo is set.
type DrugInfo struct {
	GenericName       string   `json:"genericName,omitempty"`
	BrandNames        []string `json:"brandNames,omitempty"`
	DrugClass         string   `json:"drugClass,omitempty"`
	Mechanism         string   `json:"mechanism,omitempty"`
	Indications       []string `json:"indications,omitempty"`
	SideEffects       []string `json:"sideEffects,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
	Dosing            string   `json:"dosing,omitempty"`
	RawInfo           string   `json:"rawInfo,omitempty"`
}

// CheckInteractionsRequest is the body of an interaction check
type CheckInteractionsRequest struct {
	Drugs []string `json:"drugs"`
}
