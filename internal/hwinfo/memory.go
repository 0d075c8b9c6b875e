package hwinfo

import (
	"bufio"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"codeberg.org/mutker/hwtriage/internal/logger"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	mebibyte = 1 << 20
	gibibyte = 1 << 30
)

// MemoryModules returns one record per installed module when the firmware
// memory tables are readable, falling back to a single synthetic module
// holding the total reported by the kernel. Reading the tables needs
// elevation; the fallback does not.
func (p *platformProvider) MemoryModules(ctx context.Context) ([]MemoryModule, error) {
	if p.cfg.Elevated {
		modules, err := memoryFromFirmware(ctx)
		if err == nil && len(modules) > 0 {
			return modules, nil
		}
		if err != nil {
			logger.Debug().Err(err).Msg("Firmware memory tables unreadable, using kernel total")
		}
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, translate("memory total", err)
	}

	return []MemoryModule{{CapacityBytes: vm.Total, Slot: "System"}}, nil
}

// memoryFromFirmware shells out to dmidecode for the per-module table.
func memoryFromFirmware(ctx context.Context) ([]MemoryModule, error) {
	out, err := exec.CommandContext(ctx, "dmidecode", "--type", "memory").Output()
	if err != nil {
		return nil, translate("dmidecode", err)
	}

	return parseMemoryTable(string(out)), nil
}

// parseMemoryTable extracts populated module entries from dmidecode output.
// Empty slots report "No Module Installed" and are skipped.
func parseMemoryTable(out string) []MemoryModule {
	var modules []MemoryModule
	var current *MemoryModule

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "Memory Device") {
			if current != nil && current.CapacityBytes > 0 {
				modules = append(modules, *current)
			}
			current = &MemoryModule{}
			continue
		}
		if current == nil {
			continue
		}

		key, value, found := strings.Cut(strings.TrimSpace(line), ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "Size":
			current.CapacityBytes = parseModuleSize(value)
		case "Speed":
			if mts, ok := strings.CutSuffix(value, " MT/s"); ok {
				if n, err := strconv.Atoi(mts); err == nil {
					current.SpeedMTs = n
				}
			}
		case "Manufacturer":
			if value != "Unknown" && value != "Not Specified" {
				current.Manufacturer = value
			}
		case "Locator":
			current.Slot = value
		}
	}
	if current != nil && current.CapacityBytes > 0 {
		modules = append(modules, *current)
	}

	return modules
}

func parseModuleSize(value string) uint64 {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return 0
	}

	n, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}

	switch fields[1] {
	case "MB":
		return n * mebibyte
	case "GB":
		return n * gibibyte
	default:
		return 0
	}
}
