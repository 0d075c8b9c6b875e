package assess

import (
	"context"
	"time"

	"codeberg.org/mutker/hwtriage/internal/hwinfo"
	"codeberg.org/mutker/hwtriage/internal/logger"
)

// Section titles, in report order.
const (
	titleSystem   = "System"
	titleCPU      = "CPU"
	titleMemory   = "Memory"
	titleStorage  = "Storage"
	titleGraphics = "Graphics"
	titleBattery  = "Battery"
	titleLicense  = "License"
)

// Engine assembles the condition report. Domains are probed strictly
// sequentially, each bounded by its own timeout; a failing domain degrades
// its own section and never aborts the run, so the report always holds
// exactly one section per domain in a fixed order.
type Engine struct {
	provider hwinfo.Provider
	timeout  time.Duration
}

func NewEngine(provider hwinfo.Provider, probeTimeout time.Duration) *Engine {
	return &Engine{
		provider: provider,
		timeout:  probeTimeout,
	}
}

type sectionBuilder func(context.Context, hwinfo.Provider) Section

// Run executes one full assessment and returns the immutable report.
func (e *Engine) Run(ctx context.Context) Report {
	builders := []sectionBuilder{
		buildSystemSection,
		buildCPUSection,
		buildMemorySection,
		buildStorageSection,
		buildGraphicsSection,
		buildBatterySection,
		buildLicenseSection,
	}

	started := time.Now()
	report := Report{Sections: make([]Section, 0, len(builders))}

	for _, build := range builders {
		probeCtx, cancel := context.WithTimeout(ctx, e.timeout)
		report.Sections = append(report.Sections, build(probeCtx, e.provider))
		cancel()
	}

	logger.Debug().
		Dur("elapsed", time.Since(started)).
		Int("sections", len(report.Sections)).
		Msg("Report assembled")

	return report
}
