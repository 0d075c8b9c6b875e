package assess

import (
	"context"
	"testing"

	"codeberg.org/mutker/hwtriage/internal/errors"
	"codeberg.org/mutker/hwtriage/internal/hwinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveBattery(t *testing.T) {
	tests := []struct {
		name       string
		design     float64
		full       float64
		wantHealth float64
		wantWear   float64
	}{
		{name: "lightly worn", design: 5000, full: 4200, wantHealth: 84.0, wantWear: 16.0},
		{name: "heavily worn", design: 5000, full: 2000, wantHealth: 40.0, wantWear: 60.0},
		{name: "pristine", design: 57000, full: 57000, wantHealth: 100.0, wantWear: 0.0},
		{name: "uneven division", design: 5777, full: 3333, wantHealth: 57.7, wantWear: 42.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DeriveBattery(hwinfo.BatteryUnit{
				DesignCapacityMilliWattHours:     tt.design,
				FullChargeCapacityMilliWattHours: tt.full,
			})

			require.True(t, a.HasHealth)
			assert.InDelta(t, tt.wantHealth, a.HealthPercent, 0.05)
			assert.InDelta(t, tt.wantWear, a.WearPercent, 0.05)
			assert.InDelta(t, 100.0, a.HealthPercent+a.WearPercent, 0.1,
				"health and wear must sum to 100")
			assert.Equal(t, DataSourceDetailedFirmware, a.DataSource)
		})
	}
}

func TestDeriveBatteryZeroDesignCapacity(t *testing.T) {
	a := DeriveBattery(hwinfo.BatteryUnit{
		DesignCapacityMilliWattHours:     0,
		FullChargeCapacityMilliWattHours: 4200,
	})

	assert.False(t, a.HasHealth, "no health may be derived from a zero design capacity")
	assert.Zero(t, a.HealthPercent)
	assert.Zero(t, a.WearPercent)
}

func TestBatterySectionDetailedFirmware(t *testing.T) {
	p := &fakeProvider{
		detail: hwinfo.BatteryDetail{Units: []hwinfo.BatteryUnit{
			{DesignCapacityMilliWattHours: 5000, FullChargeCapacityMilliWattHours: 4200},
		}},
	}

	section := buildBatterySection(context.Background(), p)
	require.Len(t, section.Metrics, 4)

	health := section.Metrics[2]
	assert.Equal(t, "Health", health.Label)
	assert.Equal(t, "84.0%", health.Value)
	assert.Equal(t, SeverityGood, health.Severity)

	wear := section.Metrics[3]
	assert.Equal(t, "Wear level", wear.Label)
	assert.Equal(t, "16.0%", wear.Value)
}

func TestBatterySectionCriticalWear(t *testing.T) {
	p := &fakeProvider{
		detail: hwinfo.BatteryDetail{Units: []hwinfo.BatteryUnit{
			{DesignCapacityMilliWattHours: 5000, FullChargeCapacityMilliWattHours: 2000},
		}},
	}

	section := buildBatterySection(context.Background(), p)
	require.Len(t, section.Metrics, 4)
	assert.Equal(t, "40.0%", section.Metrics[2].Value)
	assert.Equal(t, SeverityCritical, section.Metrics[2].Severity)
	assert.Equal(t, "60.0%", section.Metrics[3].Value)
}

func TestBatterySectionFirstUnitWins(t *testing.T) {
	p := &fakeProvider{
		detail: hwinfo.BatteryDetail{Units: []hwinfo.BatteryUnit{
			{DesignCapacityMilliWattHours: 5000, FullChargeCapacityMilliWattHours: 4200},
			{DesignCapacityMilliWattHours: 3000, FullChargeCapacityMilliWattHours: 1000},
		}},
	}

	section := buildBatterySection(context.Background(), p)
	require.Len(t, section.Metrics, 4)
	assert.Equal(t, "84.0%", section.Metrics[2].Value)
}

func TestBatterySectionImplausibleDesignCapacity(t *testing.T) {
	p := &fakeProvider{
		detail: hwinfo.BatteryDetail{Units: []hwinfo.BatteryUnit{
			{DesignCapacityMilliWattHours: 0, FullChargeCapacityMilliWattHours: 4200},
		}},
	}

	section := buildBatterySection(context.Background(), p)
	require.Len(t, section.Metrics, 1)
	assert.Equal(t, SeverityWarning, section.Metrics[0].Severity)
	assert.Contains(t, section.Metrics[0].Value, "implausible")
}

func TestBatterySectionFallbackEstimate(t *testing.T) {
	p := &fakeProvider{
		detailErr: errors.New().New(errors.ErrProbeUnsupported),
		status:    hwinfo.BatteryStatus{Present: true, ChargePercent: 76},
	}

	section := buildBatterySection(context.Background(), p)
	require.Len(t, section.Metrics, 2)
	assert.Equal(t, "76%", section.Metrics[0].Value)
	assert.Equal(t, SeverityNormal, section.Metrics[0].Severity)
	assert.Equal(t, SeverityWarning, section.Metrics[1].Severity)
}

func TestBatterySectionUnavailable(t *testing.T) {
	p := &fakeProvider{
		detailErr: errors.New().New(errors.ErrProbeUnsupported),
		statusErr: errors.New().New(errors.ErrProbeDeviceAbsent),
	}

	section := buildBatterySection(context.Background(), p)
	require.Len(t, section.Metrics, 1, "unavailable battery yields exactly one metric")
	assert.Equal(t, SeverityCritical, section.Metrics[0].Severity)
	assert.Contains(t, section.Metrics[0].Value, "No battery detected")
}

func TestBatterySectionFallbackReportsNoBattery(t *testing.T) {
	p := &fakeProvider{
		detailErr: errors.New().New(errors.ErrProbeDeviceAbsent),
		status:    hwinfo.BatteryStatus{Present: false},
	}

	section := buildBatterySection(context.Background(), p)
	require.Len(t, section.Metrics, 1)
	assert.Equal(t, SeverityCritical, section.Metrics[0].Severity)
}

func TestClassifyBatteryHealthBoundaries(t *testing.T) {
	assert.Equal(t, SeverityGood, classifyBatteryHealth(100))
	assert.Equal(t, SeverityGood, classifyBatteryHealth(70))
	assert.Equal(t, SeverityWarning, classifyBatteryHealth(69.9))
	assert.Equal(t, SeverityWarning, classifyBatteryHealth(50))
	assert.Equal(t, SeverityCritical, classifyBatteryHealth(49.9))
	assert.Equal(t, SeverityCritical, classifyBatteryHealth(0))
}
