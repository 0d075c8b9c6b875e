package hwinfo

import "context"

// Provider fetches raw telemetry for one hardware domain per call. Every
// method is a read-only query: it returns either the typed records for its
// domain or a typed probe failure (see errors.go), never both and never a
// raw platform error. Records are immutable once returned.
type Provider interface {
	SystemIdentity(ctx context.Context) (SystemIdentity, error)
	CPU(ctx context.Context) (CPUInfo, error)
	MemoryModules(ctx context.Context) ([]MemoryModule, error)
	Disks(ctx context.Context) ([]DiskInfo, error)
	Graphics(ctx context.Context) ([]GPUInfo, error)
	BatteryDetail(ctx context.Context) (BatteryDetail, error)
	BatteryStatus(ctx context.Context) (BatteryStatus, error)
	LicenseProducts(ctx context.Context) ([]LicenseProduct, error)
}

// SystemIdentity describes the machine itself. SerialNumber may be empty
// when the process lacks the rights to read it.
type SystemIdentity struct {
	Manufacturer string
	Model        string
	SerialNumber string
	OSName       string
	OSVersion    string
	Hostname     string
}

type CPUInfo struct {
	Model        string
	Cores        int
	Threads      int
	BaseClockMHz float64
}

// MemoryModule is one installed RAM module. A machine reports zero or more.
type MemoryModule struct {
	CapacityBytes uint64
	SpeedMTs      int
	Manufacturer  string
	Slot          string
}

type DiskInfo struct {
	Model        string
	SerialNumber string
	SizeBytes    uint64
	MediaType    string
	HealthStatus string
}

type GPUInfo struct {
	Name          string
	VRAMBytes     uint64
	DriverVersion string
}

// BatteryDetail carries per-unit firmware capacity data. Units appear in
// firmware enumeration order; derivation picks the first.
type BatteryDetail struct {
	Units []BatteryUnit
}

type BatteryUnit struct {
	DesignCapacityMilliWattHours     float64
	FullChargeCapacityMilliWattHours float64
}

// BatteryStatus is the coarse fallback interface used when detailed
// firmware data is not exposed.
type BatteryStatus struct {
	Present       bool
	ChargePercent float64
}

// LicenseProduct is one product entry from the platform licensing state,
// already scoped to the host operating system's product line.
type LicenseProduct struct {
	Name              string
	PartialProductKey string
	StatusCode        int
}
