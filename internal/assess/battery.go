package assess

import (
	"context"
	"math"
	"strconv"

	"codeberg.org/mutker/hwtriage/internal/hwinfo"
	"codeberg.org/mutker/hwtriage/internal/logger"
)

// DeriveBattery computes wear and health from one battery unit's firmware
// capacities. Health is only derived for a positive design capacity;
// otherwise the assessment carries the raw capacities and no percentages.
func DeriveBattery(unit hwinfo.BatteryUnit) BatteryAssessment {
	assessment := BatteryAssessment{
		DesignCapacityMilliWattHours:     unit.DesignCapacityMilliWattHours,
		FullChargeCapacityMilliWattHours: unit.FullChargeCapacityMilliWattHours,
		DataSource:                       DataSourceDetailedFirmware,
	}

	if unit.DesignCapacityMilliWattHours > 0 {
		assessment.HealthPercent = round1(unit.FullChargeCapacityMilliWattHours / unit.DesignCapacityMilliWattHours * 100)
		assessment.WearPercent = round1(100 - assessment.HealthPercent)
		assessment.HasHealth = true
	}

	return assessment
}

// buildBatterySection tries retrieval strategies in priority order:
// detailed firmware capacities, then the coarse charge interface, then a
// single critical entry. Firmware reporting several units is resolved by
// taking the first in enumeration order.
func buildBatterySection(ctx context.Context, provider hwinfo.Provider) Section {
	detail, err := provider.BatteryDetail(ctx)
	if err == nil && len(detail.Units) > 0 {
		return batterySectionFromDetail(detail.Units[0])
	}
	if err != nil {
		logger.Debug().Err(err).Msg("Detailed battery interface unavailable, trying fallback")
	}

	status, err := provider.BatteryStatus(ctx)
	if err == nil && status.Present {
		return Section{Title: titleBattery, Metrics: []Metric{
			{
				Label:    "Charge remaining",
				Value:    strconv.FormatFloat(status.ChargePercent, 'f', 0, 64) + "%",
				Severity: SeverityNormal,
			},
			{
				Label:    "Battery health",
				Value:    "Unavailable (firmware does not expose wear data)",
				Severity: SeverityWarning,
			},
		}}
	}

	return Section{Title: titleBattery, Metrics: []Metric{
		{
			Label:    "Battery",
			Value:    "No battery detected or battery driver error",
			Severity: SeverityCritical,
		},
	}}
}

func batterySectionFromDetail(unit hwinfo.BatteryUnit) Section {
	assessment := DeriveBattery(unit)

	if !assessment.HasHealth {
		return Section{Title: titleBattery, Metrics: []Metric{
			{
				Label:    "Battery health",
				Value:    "Firmware reported implausible design capacity",
				Severity: SeverityWarning,
			},
		}}
	}

	severity := classifyBatteryHealth(assessment.HealthPercent)

	return Section{Title: titleBattery, Metrics: []Metric{
		{
			Label:    "Design capacity",
			Value:    formatMilliWattHours(assessment.DesignCapacityMilliWattHours),
			Severity: SeverityNormal,
		},
		{
			Label:    "Full charge capacity",
			Value:    formatMilliWattHours(assessment.FullChargeCapacityMilliWattHours),
			Severity: SeverityNormal,
		},
		{
			Label:    "Health",
			Value:    formatPercent1(assessment.HealthPercent),
			Severity: severity,
		},
		{
			Label:    "Wear level",
			Value:    formatPercent1(assessment.WearPercent),
			Severity: severity,
		},
	}}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func formatPercent1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func formatMilliWattHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64) + " mWh"
}
