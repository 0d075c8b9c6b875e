package hwinfo

import (
	"context"
	"os"
	"path/filepath"
)

const (
	microToMilli   = 1000
	microProductWh = 1e9 // µAh * µV per mWh
)

// BatteryDetail reads per-unit design and full-charge capacity from the
// power supply class. Firmware exposes either energy counters (µWh) or
// charge counters (µAh) with a design voltage; both are normalized to mWh.
// Units appear in enumeration order.
func (p *platformProvider) BatteryDetail(ctx context.Context) (BatteryDetail, error) {
	if err := ctx.Err(); err != nil {
		return BatteryDetail{}, translate("battery detail", err)
	}

	dirs, err := p.batteryDirs()
	if err != nil {
		return BatteryDetail{}, err
	}
	if len(dirs) == 0 {
		return BatteryDetail{}, failDeviceAbsent("no battery present")
	}

	var units []BatteryUnit
	for _, dir := range dirs {
		unit, ok := readBatteryUnit(dir)
		if ok {
			units = append(units, unit)
		}
	}

	if len(units) == 0 {
		return BatteryDetail{}, failUnsupported("battery firmware does not expose capacity data")
	}

	return BatteryDetail{Units: units}, nil
}

// BatteryStatus is the coarse fallback: presence and charge percentage only.
func (p *platformProvider) BatteryStatus(ctx context.Context) (BatteryStatus, error) {
	if err := ctx.Err(); err != nil {
		return BatteryStatus{}, translate("battery status", err)
	}

	dirs, err := p.batteryDirs()
	if err != nil {
		return BatteryStatus{}, err
	}
	if len(dirs) == 0 {
		return BatteryStatus{Present: false}, nil
	}

	return BatteryStatus{
		Present:       true,
		ChargePercent: float64(readSysfsUint(filepath.Join(dirs[0], "capacity"))),
	}, nil
}

// batteryDirs lists power supply entries of type Battery.
func (p *platformProvider) batteryDirs() ([]string, error) {
	supplyDir := filepath.Join(p.cfg.SysfsRoot, "class/power_supply")
	entries, err := os.ReadDir(supplyDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, failUnsupported("power supply class not available")
		}
		return nil, translate("power supply class", err)
	}

	var dirs []string
	for _, entry := range entries {
		dir := filepath.Join(supplyDir, entry.Name())
		if readSysfsString(filepath.Join(dir, "type")) == "Battery" {
			dirs = append(dirs, dir)
		}
	}

	return dirs, nil
}

func readBatteryUnit(dir string) (BatteryUnit, bool) {
	// Energy counters are already in µWh
	design := readSysfsUint(filepath.Join(dir, "energy_full_design"))
	full := readSysfsUint(filepath.Join(dir, "energy_full"))
	if design > 0 || full > 0 {
		return BatteryUnit{
			DesignCapacityMilliWattHours:     float64(design) / microToMilli,
			FullChargeCapacityMilliWattHours: float64(full) / microToMilli,
		}, true
	}

	// Charge counters need the design voltage to become watt-hours
	designCharge := readSysfsUint(filepath.Join(dir, "charge_full_design"))
	fullCharge := readSysfsUint(filepath.Join(dir, "charge_full"))
	voltage := readSysfsUint(filepath.Join(dir, "voltage_min_design"))
	if voltage > 0 && (designCharge > 0 || fullCharge > 0) {
		return BatteryUnit{
			DesignCapacityMilliWattHours:     float64(designCharge) * float64(voltage) / microProductWh,
			FullChargeCapacityMilliWattHours: float64(fullCharge) * float64(voltage) / microProductWh,
		}, true
	}

	return BatteryUnit{}, false
}
