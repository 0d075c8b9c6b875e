package hwinfo

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/hwtriage/internal/logger"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

const (
	defaultSysfsRoot        = "/sys"
	defaultLicenseStatePath = "/var/lib/hwtriage/license-state.json"
)

// Config controls how the platform provider probes the machine.
type Config struct {
	// Elevated tells the provider whether the process runs with the
	// rights needed for disk health and firmware memory tables. The host
	// decides this; the provider never probes for it.
	Elevated bool

	// SysfsRoot overrides the sysfs mount point. Tests point this at a
	// fixture tree.
	SysfsRoot string

	// LicenseStatePath overrides the licensing state file location.
	LicenseStatePath string
}

type platformProvider struct {
	cfg    Config
	gfx    graphicsController
	health healthFunc
}

// New returns the platform-backed telemetry provider.
func New(cfg Config) Provider {
	if cfg.SysfsRoot == "" {
		cfg.SysfsRoot = defaultSysfsRoot
	}
	if cfg.LicenseStatePath == "" {
		cfg.LicenseStatePath = defaultLicenseStatePath
	}

	return &platformProvider{
		cfg:    cfg,
		gfx:    &nvmlWrapper{},
		health: smartHealth,
	}
}

func (p *platformProvider) SystemIdentity(ctx context.Context) (SystemIdentity, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return SystemIdentity{}, translate("system identity", err)
	}

	id := SystemIdentity{
		Hostname:     info.Hostname,
		OSName:       info.Platform,
		OSVersion:    info.PlatformVersion,
		Manufacturer: p.dmi("sys_vendor"),
		Model:        p.dmi("product_name"),
		SerialNumber: p.dmi("product_serial"),
	}

	logger.Debug().Str("model", id.Model).Msg("System identity probed")

	return id, nil
}

func (p *platformProvider) CPU(ctx context.Context) (CPUInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return CPUInfo{}, translate("cpu info", err)
	}
	if len(infos) == 0 {
		return CPUInfo{}, failDeviceAbsent("no CPU reported by the platform")
	}

	threads, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		threads = 0
	}
	cores, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		cores = 0
	}

	return CPUInfo{
		Model:        strings.TrimSpace(infos[0].ModelName),
		Cores:        cores,
		Threads:      threads,
		BaseClockMHz: infos[0].Mhz,
	}, nil
}

// dmi reads one attribute from the DMI table exposed under sysfs. Attributes
// gated on elevation (the serial number) come back empty without it.
func (p *platformProvider) dmi(name string) string {
	b, err := os.ReadFile(filepath.Join(p.cfg.SysfsRoot, "class/dmi/id", name))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(b))
}
