package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"triage-risk-service/internal/core/domain"
)

func TestClassifyTransaction_Tiers(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   domain.RiskLevel
	}{
		{"zero", 0, domain.RiskLow},
		{"below medium boundary", 999.99, domain.RiskLow},
		{"medium boundary inclusive", 1000, domain.RiskMedium},
		{"just below high boundary", 9999.999, domain.RiskMedium},
		{"high boundary inclusive", 10000, domain.RiskHigh},
		{"far above high", 250000, domain.RiskHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.TransactionInput{Amount: tt.amount, Category: "general"}
			assert.Equal(t, tt.want, ClassifyTransaction(in))
		})
	}
}

func TestClassifyTriage_DecisionList(t *testing.T) {
	tests := []struct {
		name string
		in   domain.TriageInput
		want domain.RiskLevel
	}{
		{
			name: "shortness of breath always high",
			in:   domain.TriageInput{Age: 20, Sex: domain.SexMale, ShortnessOfBreath: true},
			want: domain.RiskHigh,
		},
		{
			name: "elderly with fever high before medium rule",
			in:   domain.TriageInput{Age: 80, Sex: domain.SexFemale, Fever: true},
			want: domain.RiskHigh,
		},
		{
			name: "age alone reaches medium",
			in:   domain.TriageInput{Age: 66, Sex: domain.SexOther},
			want: domain.RiskMedium,
		},
		{
			name: "fever and cough reach medium",
			in:   domain.TriageInput{Age: 30, Sex: domain.SexMale, Fever: true, Cough: true},
			want: domain.RiskMedium,
		},
		{
			name: "fever alone stays low",
			in:   domain.TriageInput{Age: 30, Sex: domain.SexFemale, Fever: true},
			want: domain.RiskLow,
		},
		{
			name: "no findings low",
			in:   domain.TriageInput{Age: 30, Sex: domain.SexMale},
			want: domain.RiskLow,
		},
		{
			name: "age 74 with fever only medium not high",
			in:   domain.TriageInput{Age: 74, Sex: domain.SexFemale, Fever: true},
			want: domain.RiskMedium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTriage(tt.in))
		})
	}
}
