package assess

// Metric is one labeled, display-ready value with its health implication.
// The value is formatted exactly once, at derivation time; nothing
// downstream re-derives it.
type Metric struct {
	Label    string
	Value    string
	Severity Severity
}

// Section groups the metrics of one telemetry domain. Metric order matches
// the enumeration order of the domain's fields.
type Section struct {
	Title   string
	Metrics []Metric
}

// Report is the terminal artifact of the pipeline: the ordered sections,
// one per domain, immutable once assembled.
type Report struct {
	Sections []Section
}

// DataSource records which retrieval strategy supplied battery data.
type DataSource int

const (
	DataSourceUnavailable DataSource = iota
	DataSourceFallbackEstimate
	DataSourceDetailedFirmware
)

func (s DataSource) String() string {
	switch s {
	case DataSourceDetailedFirmware:
		return "detailed firmware"
	case DataSourceFallbackEstimate:
		return "fallback estimate"
	default:
		return "unavailable"
	}
}

// BatteryAssessment is the derived battery condition. HealthPercent and
// WearPercent are meaningful only when HasHealth is set, which requires a
// positive design capacity.
type BatteryAssessment struct {
	DesignCapacityMilliWattHours     float64
	FullChargeCapacityMilliWattHours float64
	HealthPercent                    float64
	WearPercent                      float64
	HasHealth                        bool
	DataSource                       DataSource
}
