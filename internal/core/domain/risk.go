package domain

// RiskLevel is the sole output of both the rule-based and the model-based
// classification paths.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskLevels lists every valid level in label-index order. The trainer
// encodes class labels by their position in this slice, so the order is
// part of the artifact format and must not change.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// ParseRiskLevel rejects anything outside the three-level set. Model output
// passes through here before it is allowed to reach a caller.
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(s)
	if !r.Valid() {
		return "", ErrInvalidRiskLevel
	}
	return r, nil
}

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// TransactionInput is the legacy feature-shaped input used by the rule path
// and by training records. Fields arrive pre-validated from the HTTP layer.
type TransactionInput struct {
	Amount   float64        `json:"amount"`
	Category string         `json:"category"`
	Features map[string]any `json:"features,omitempty"`
}

// TriageInput is the clinical input classified by the triage decision list.
type TriageInput struct {
	Name              string `json:"name,omitempty"`
	Age               int    `json:"age"`
	Sex               Sex    `json:"sex"`
	Fever             bool   `json:"fever"`
	Cough             bool   `json:"cough"`
	ShortnessOfBreath bool   `json:"shortness_of_breath"`
	Antecedents       string `json:"antecedents,omitempty"`
}
