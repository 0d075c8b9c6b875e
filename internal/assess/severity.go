package assess

import "codeberg.org/mutker/hwtriage/internal/hwinfo"

// Severity is the ordered health classification of a metric. The order
// matters: Critical > Warning > Good > Normal when summarizing.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityGood
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityGood:
		return "good"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Worst returns the more severe of s and other.
func (s Severity) Worst(other Severity) Severity {
	if other > s {
		return other
	}

	return s
}

// Classification thresholds live here, not at the call sites, so they can
// be audited and tested in isolation from fetch and derivation logic.

// batteryHealthRules map a health percentage to a severity. Evaluated most
// severe first; the first matching rule wins, so the lower bound overrides
// the higher one.
var batteryHealthRules = []struct {
	Below    float64
	Severity Severity
}{
	{Below: 50, Severity: SeverityCritical},
	{Below: 70, Severity: SeverityWarning},
}

func classifyBatteryHealth(healthPercent float64) Severity {
	for _, rule := range batteryHealthRules {
		if healthPercent < rule.Below {
			return rule.Severity
		}
	}

	return SeverityGood
}

// licenseStatusActivated is the only status code considered healthy.
const licenseStatusActivated = 1

func classifyLicenseStatus(code int) Severity {
	if code == licenseStatusActivated {
		return SeverityGood
	}

	return SeverityWarning
}

// classifyDiskHealth treats anything but the exact healthy token as a
// failing drive.
func classifyDiskHealth(status string) Severity {
	if status == hwinfo.HealthHealthy {
		return SeverityGood
	}

	return SeverityCritical
}
