package hwinfo

import (
	"context"

	"codeberg.org/mutker/hwtriage/internal/errors"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// graphicsController abstracts the GPU management library for testing
type graphicsController interface {
	Devices(ctx context.Context) ([]GPUInfo, error)
}

type nvmlWrapper struct{}

// Graphics enumerates discrete GPU adapters. Machines without the vendor
// library report the domain as unsupported rather than failing the run.
func (p *platformProvider) Graphics(ctx context.Context) ([]GPUInfo, error) {
	return p.gfx.Devices(ctx)
}

func (*nvmlWrapper) Devices(ctx context.Context) ([]GPUInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, translate("graphics", err)
	}

	if ret := nvml.Init(); !isNVMLSuccess(ret) {
		return nil, failUnsupported("GPU management library unavailable: " + nvml.ErrorString(ret))
	}
	defer nvml.Shutdown()

	count, ret := nvml.DeviceGetCount()
	if !isNVMLSuccess(ret) {
		return nil, newNVMLError(errors.ErrProbeUnknown, ret)
	}
	if count == 0 {
		return nil, failDeviceAbsent("no GPU adapters found")
	}

	driver, ret := nvml.SystemGetDriverVersion()
	if !isNVMLSuccess(ret) {
		driver = ""
	}

	var gpus []GPUInfo
	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if !isNVMLSuccess(ret) {
			return nil, newNVMLError(errors.ErrProbeUnknown, ret)
		}

		info := GPUInfo{DriverVersion: driver}
		if name, ret := device.GetName(); isNVMLSuccess(ret) {
			info.Name = name
		}
		if memory, ret := device.GetMemoryInfo(); isNVMLSuccess(ret) {
			info.VRAMBytes = memory.Total
		}

		gpus = append(gpus, info)
	}

	return gpus, nil
}

// newNVMLError wraps an NVML return code as a typed probe failure
func newNVMLError(code errors.ErrorCode, ret nvml.Return) error {
	return errors.New().WithData(code, nvml.ErrorString(ret))
}

// isNVMLSuccess checks if a Return value indicates success
func isNVMLSuccess(ret nvml.Return) bool {
	return ret == nvml.SUCCESS
}
