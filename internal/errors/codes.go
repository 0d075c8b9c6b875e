package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrNotImplemented  ErrorCode = "not_implemented"
	ErrUnavailable     ErrorCode = "service_unavailable"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrMissingConfig   ErrorCode = "missing_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidTimeout  ErrorCode = "invalid_timeout"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed ErrorCode = "initialization_failed"
	ErrInitApp    ErrorCode = "init_app_failed"

	// Probe errors, one per failure class of the instrumentation layer
	ErrProbeUnsupported      ErrorCode = "probe_unsupported"
	ErrProbePermissionDenied ErrorCode = "probe_permission_denied"
	ErrProbeDeviceAbsent     ErrorCode = "probe_device_absent"
	ErrProbeDataQuality      ErrorCode = "probe_data_quality"
	ErrProbeUnknown          ErrorCode = "probe_failed"

	// Report errors
	ErrAssembleReport ErrorCode = "assemble_report_failed"
	ErrRenderReport   ErrorCode = "render_report_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:              "Internal error occurred",
	ErrInvalidArgument:       "Invalid argument provided",
	ErrNotImplemented:        "Operation not implemented",
	ErrUnavailable:           "Service unavailable",
	ErrInvalidConfig:         "Invalid configuration",
	ErrMissingConfig:         "Missing configuration",
	ErrBindFlags:             "Failed to bind flags",
	ErrReadConfig:            "Failed to read configuration",
	ErrInvalidTimeout:        "Invalid probe timeout value",
	ErrInvalidLogLevel:       "Invalid log level",
	ErrInitFailed:            "Initialization failed",
	ErrInitApp:               "Failed to initialize application",
	ErrProbeUnsupported:      "Telemetry class not supported on this platform",
	ErrProbePermissionDenied: "Telemetry class requires elevated privileges",
	ErrProbeDeviceAbsent:     "Device not present",
	ErrProbeDataQuality:      "Device reported implausible data",
	ErrProbeUnknown:          "Telemetry probe failed",
	ErrAssembleReport:        "Failed to assemble report",
	ErrRenderReport:          "Failed to render report",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
