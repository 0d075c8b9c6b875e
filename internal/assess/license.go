package assess

import (
	"context"
	"strconv"

	"codeberg.org/mutker/hwtriage/internal/hwinfo"
)

// licenseStatusLabels maps the platform licensing status codes to their
// human labels.
var licenseStatusLabels = map[int]string{
	0: "Unlicensed",
	1: "Licensed (Activated)",
	2: "OOBE Grace",
	3: "OOT Grace",
	4: "Non-Genuine Grace",
	5: "Notification",
	6: "Extended Grace",
}

// LicenseStatusLabel resolves a status code to its label. Codes outside the
// known set get a generic label rather than failing.
func LicenseStatusLabel(code int) string {
	if label, ok := licenseStatusLabels[code]; ok {
		return label
	}

	return "Unknown status code " + strconv.Itoa(code)
}

// buildLicenseSection reports the activation state of the installed OS
// license. Among the returned products, the first one with a partially
// installed key wins; the provider preserves its source order, which makes
// the tie-break deterministic.
func buildLicenseSection(ctx context.Context, provider hwinfo.Provider) Section {
	products, err := provider.LicenseProducts(ctx)
	if err != nil {
		return failureSection(titleLicense, "license", err)
	}

	for _, product := range products {
		if product.PartialProductKey == "" {
			continue
		}

		return Section{Title: titleLicense, Metrics: []Metric{
			{Label: "Product", Value: product.Name, Severity: SeverityNormal},
			{
				Label:    "Status",
				Value:    LicenseStatusLabel(product.StatusCode),
				Severity: classifyLicenseStatus(product.StatusCode),
			},
		}}
	}

	return Section{Title: titleLicense, Metrics: []Metric{
		{Label: "Status", Value: "Could not determine status", Severity: SeverityWarning},
	}}
}
