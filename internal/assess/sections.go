package assess

import (
	"context"
	"strconv"
	"strings"

	"codeberg.org/mutker/hwtriage/internal/errors"
	"codeberg.org/mutker/hwtriage/internal/hwinfo"
)

func buildSystemSection(ctx context.Context, provider hwinfo.Provider) Section {
	identity, err := provider.SystemIdentity(ctx)
	if err != nil {
		return failureSection(titleSystem, "system", err)
	}

	serial := identity.SerialNumber
	if serial == "" {
		serial = "Unavailable"
	}

	return Section{Title: titleSystem, Metrics: []Metric{
		{Label: "Manufacturer", Value: orUnknown(identity.Manufacturer), Severity: SeverityNormal},
		{Label: "Model", Value: orUnknown(identity.Model), Severity: SeverityNormal},
		{Label: "Serial number", Value: serial, Severity: SeverityNormal},
		{Label: "Operating system", Value: orUnknown(strings.TrimSpace(identity.OSName + " " + identity.OSVersion)), Severity: SeverityNormal},
		{Label: "Hostname", Value: orUnknown(identity.Hostname), Severity: SeverityNormal},
	}}
}

func buildCPUSection(ctx context.Context, provider hwinfo.Provider) Section {
	info, err := provider.CPU(ctx)
	if err != nil {
		return failureSection(titleCPU, "CPU", err)
	}

	return Section{Title: titleCPU, Metrics: []Metric{
		{Label: "Model", Value: orUnknown(info.Model), Severity: SeverityNormal},
		{
			Label:    "Cores / Threads",
			Value:    strconv.Itoa(info.Cores) + " / " + strconv.Itoa(info.Threads),
			Severity: SeverityNormal,
		},
		{
			Label:    "Base clock",
			Value:    strconv.FormatFloat(info.BaseClockMHz, 'f', 0, 64) + " MHz",
			Severity: SeverityNormal,
		},
	}}
}

func buildStorageSection(ctx context.Context, provider hwinfo.Provider) Section {
	disks, err := provider.Disks(ctx)
	if err != nil {
		return failureSection(titleStorage, "disk", err)
	}

	metrics := make([]Metric, 0, len(disks)*2)
	for i, disk := range disks {
		name := disk.Model
		if name == "" {
			name = "Disk " + strconv.Itoa(i+1)
		}

		metrics = append(metrics,
			Metric{
				Label:    name,
				Value:    strconv.Itoa(RoundGB(disk.SizeBytes)) + " GB " + disk.MediaType,
				Severity: SeverityNormal,
			},
			Metric{
				Label:    name + " health",
				Value:    disk.HealthStatus,
				Severity: classifyDiskHealth(disk.HealthStatus),
			},
		)
	}

	return Section{Title: titleStorage, Metrics: metrics}
}

func buildGraphicsSection(ctx context.Context, provider hwinfo.Provider) Section {
	gpus, err := provider.Graphics(ctx)
	if err != nil {
		return failureSection(titleGraphics, "graphics", err)
	}

	metrics := make([]Metric, 0, len(gpus))
	for i, gpu := range gpus {
		name := gpu.Name
		if name == "" {
			name = "Adapter " + strconv.Itoa(i+1)
		}

		value := strconv.Itoa(RoundGB(gpu.VRAMBytes)) + " GB VRAM"
		if gpu.DriverVersion != "" {
			value += ", driver " + gpu.DriverVersion
		}

		metrics = append(metrics, Metric{Label: name, Value: value, Severity: SeverityNormal})
	}

	return Section{Title: titleGraphics, Metrics: metrics}
}

// failureSection turns a probe failure into a degraded section holding one
// explanatory metric. No failure class aborts the report.
func failureSection(title, domain string, err error) Section {
	return Section{Title: title, Metrics: []Metric{failureMetric(domain, err)}}
}

func failureMetric(domain string, err error) Metric {
	switch hwinfo.FailureCode(err) {
	case errors.ErrProbePermissionDenied:
		return Metric{
			Label:    "Status",
			Value:    "Requires elevation to read " + domain + " details",
			Severity: SeverityWarning,
		}
	case errors.ErrProbeDeviceAbsent:
		return Metric{
			Label:    "Status",
			Value:    "No " + domain + " devices detected",
			Severity: SeverityWarning,
		}
	case errors.ErrProbeUnsupported:
		return Metric{
			Label:    "Status",
			Value:    "Not supported on this platform",
			Severity: SeverityWarning,
		}
	case errors.ErrProbeDataQuality:
		return Metric{
			Label:    "Status",
			Value:    "Platform reported implausible " + domain + " data",
			Severity: SeverityWarning,
		}
	default:
		return Metric{
			Label:    "Status",
			Value:    "Could not determine " + domain + " state",
			Severity: SeverityWarning,
		}
	}
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}

	return value
}
