// Package ml implements the risk-classification core: deterministic rule
// engines, feature assembly, preprocessing, the candidate learners, the
// cross-validated trainer/selector and the artifact codec.
package ml

import "triage-risk-service/internal/core/domain"

// ClassifyTransaction is the deterministic legacy rule model. Thresholds are
// inclusive on the lower bound of each tier.
func ClassifyTransaction(in domain.TransactionInput) domain.RiskLevel {
	if in.Amount >= 10000 {
		return domain.RiskHigh
	}
	if in.Amount >= 1000 {
		return domain.RiskMedium
	}
	return domain.RiskLow
}

// ClassifyTriage evaluates the clinical decision list in order; the first
// matching rule wins. The two high rules must stay ahead of the medium rule
// or an age>=65 patient with shortness of breath would be downgraded.
func ClassifyTriage(in domain.TriageInput) domain.RiskLevel {
	if in.ShortnessOfBreath {
		return domain.RiskHigh
	}
	if in.Age >= 75 && in.Fever {
		return domain.RiskHigh
	}
	if in.Age >= 65 || (in.Fever && in.Cough) {
		return domain.RiskMedium
	}
	return domain.RiskLow
}
