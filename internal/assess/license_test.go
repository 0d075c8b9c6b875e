package assess

import (
	"context"
	"testing"

	"codeberg.org/mutker/hwtriage/internal/errors"
	"codeberg.org/mutker/hwtriage/internal/hwinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicenseStatusLabels(t *testing.T) {
	tests := []struct {
		code         int
		wantLabel    string
		wantSeverity Severity
	}{
		{code: 0, wantLabel: "Unlicensed", wantSeverity: SeverityWarning},
		{code: 1, wantLabel: "Licensed (Activated)", wantSeverity: SeverityGood},
		{code: 2, wantLabel: "OOBE Grace", wantSeverity: SeverityWarning},
		{code: 3, wantLabel: "OOT Grace", wantSeverity: SeverityWarning},
		{code: 4, wantLabel: "Non-Genuine Grace", wantSeverity: SeverityWarning},
		{code: 5, wantLabel: "Notification", wantSeverity: SeverityWarning},
		{code: 6, wantLabel: "Extended Grace", wantSeverity: SeverityWarning},
		{code: 7, wantLabel: "Unknown status code 7", wantSeverity: SeverityWarning},
		{code: 42, wantLabel: "Unknown status code 42", wantSeverity: SeverityWarning},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantLabel, LicenseStatusLabel(tt.code))
		assert.Equal(t, tt.wantSeverity, classifyLicenseStatus(tt.code))
	}
}

func TestLicenseSectionActivated(t *testing.T) {
	p := &fakeProvider{
		products: []hwinfo.LicenseProduct{
			{Name: "Pro edition", PartialProductKey: "3V66T", StatusCode: 1},
		},
	}

	section := buildLicenseSection(context.Background(), p)
	require.Len(t, section.Metrics, 2)
	assert.Equal(t, "Licensed (Activated)", section.Metrics[1].Value)
	assert.Equal(t, SeverityGood, section.Metrics[1].Severity)
}

func TestLicenseSectionFirstMatchWins(t *testing.T) {
	p := &fakeProvider{
		products: []hwinfo.LicenseProduct{
			{Name: "Eval edition", PartialProductKey: "", StatusCode: 0},
			{Name: "Pro edition", PartialProductKey: "3V66T", StatusCode: 3},
			{Name: "Home edition", PartialProductKey: "8HVX7", StatusCode: 1},
		},
	}

	section := buildLicenseSection(context.Background(), p)
	require.Len(t, section.Metrics, 2)
	assert.Equal(t, "Pro edition", section.Metrics[0].Value,
		"products without a partial key are skipped, then first match wins")
	assert.Equal(t, "OOT Grace", section.Metrics[1].Value)
	assert.Equal(t, SeverityWarning, section.Metrics[1].Severity)
}

func TestLicenseSectionNoCandidate(t *testing.T) {
	p := &fakeProvider{
		products: []hwinfo.LicenseProduct{
			{Name: "Eval edition", PartialProductKey: "", StatusCode: 0},
		},
	}

	section := buildLicenseSection(context.Background(), p)
	require.Len(t, section.Metrics, 1)
	assert.Equal(t, "Could not determine status", section.Metrics[0].Value)
	assert.Equal(t, SeverityWarning, section.Metrics[0].Severity)
}

func TestLicenseSectionProbeFailure(t *testing.T) {
	p := &fakeProvider{
		productsErr: errors.New().New(errors.ErrProbeUnsupported),
	}

	section := buildLicenseSection(context.Background(), p)
	require.Len(t, section.Metrics, 1)
	assert.Equal(t, SeverityWarning, section.Metrics[0].Severity)
}
