package assess

import (
	"context"
	"math"
	"strconv"

	"codeberg.org/mutker/hwtriage/internal/hwinfo"
	"codeberg.org/mutker/hwtriage/internal/logger"
)

// RoundGB converts a byte count to whole gigabytes for display.
func RoundGB(bytes uint64) int {
	return int(math.Round(float64(bytes) / float64(1<<30)))
}

// buildMemorySection lists installed modules and their total. The total
// sums the already-rounded per-module values, keeping parity with how the
// report has always presented it; the byte-exact total is logged for
// diagnostics.
func buildMemorySection(ctx context.Context, provider hwinfo.Provider) Section {
	modules, err := provider.MemoryModules(ctx)
	if err != nil {
		return failureSection(titleMemory, "memory", err)
	}
	if len(modules) == 0 {
		return Section{Title: titleMemory, Metrics: []Metric{
			{Label: "Installed memory", Value: "No modules reported", Severity: SeverityWarning},
		}}
	}

	metrics := make([]Metric, 0, len(modules)+1)
	totalGB := 0
	var totalBytes uint64

	for i, module := range modules {
		gb := RoundGB(module.CapacityBytes)
		totalGB += gb
		totalBytes += module.CapacityBytes

		label := module.Slot
		if label == "" {
			label = "Module " + strconv.Itoa(i+1)
		}

		value := strconv.Itoa(gb) + " GB"
		if module.SpeedMTs > 0 {
			value += " @ " + strconv.Itoa(module.SpeedMTs) + " MT/s"
		}
		if module.Manufacturer != "" {
			value += " (" + module.Manufacturer + ")"
		}

		metrics = append(metrics, Metric{Label: label, Value: value, Severity: SeverityNormal})
	}

	logger.Debug().Uint64("total_bytes", totalBytes).Msg("Memory modules probed")

	metrics = append(metrics, Metric{
		Label:    "Total installed",
		Value:    strconv.Itoa(totalGB) + " GB",
		Severity: SeverityGood,
	})

	return Section{Title: titleMemory, Metrics: metrics}
}
