package hwinfo

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/mutker/hwtriage/internal/logger"
)

const sectorSize = 512

// HealthHealthy is the exact token reported for a drive that passed its
// self-assessment. Anything else is treated as failing downstream.
const HealthHealthy = "Healthy"

// Disks enumerates physical block devices with their self-assessed health.
// Health queries need elevation, so the whole domain degrades to a
// permission failure without it rather than reporting drives with
// unreadable health.
func (p *platformProvider) Disks(ctx context.Context) ([]DiskInfo, error) {
	if !p.cfg.Elevated {
		return nil, failPermissionDenied("disk health requires elevation")
	}

	blockDir := filepath.Join(p.cfg.SysfsRoot, "block")
	entries, err := os.ReadDir(blockDir)
	if err != nil {
		return nil, translate("block devices", err)
	}

	var disks []DiskInfo
	for _, entry := range entries {
		name := entry.Name()
		if !isPhysicalDisk(name) {
			continue
		}

		devDir := filepath.Join(blockDir, name)
		disk := DiskInfo{
			Model:        readSysfsString(filepath.Join(devDir, "device/model")),
			SerialNumber: readSysfsString(filepath.Join(devDir, "device/serial")),
			SizeBytes:    readSysfsUint(filepath.Join(devDir, "size")) * sectorSize,
			MediaType:    mediaType(devDir),
			HealthStatus: p.health(ctx, "/dev/"+name),
		}
		disks = append(disks, disk)

		logger.Debug().
			Str("device", name).
			Str("health", disk.HealthStatus).
			Msg("Disk probed")
	}

	if len(disks) == 0 {
		return nil, failDeviceAbsent("no physical disks found")
	}

	return disks, nil
}

// isPhysicalDisk filters out virtual and composite block devices.
func isPhysicalDisk(name string) bool {
	for _, prefix := range []string{"loop", "ram", "zram", "dm-", "md", "sr", "fd"} {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}

	return true
}

func mediaType(devDir string) string {
	switch readSysfsString(filepath.Join(devDir, "queue/rotational")) {
	case "0":
		return "SSD"
	case "1":
		return "HDD"
	default:
		return "Unknown"
	}
}

func readSysfsString(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(b))
}

func readSysfsUint(path string) uint64 {
	n, err := strconv.ParseUint(readSysfsString(path), 10, 64)
	if err != nil {
		return 0
	}

	return n
}
