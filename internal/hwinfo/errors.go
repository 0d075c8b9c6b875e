package hwinfo

import (
	"context"
	"os"

	"codeberg.org/mutker/hwtriage/internal/errors"
)

// Probe failures carry one of the ErrProbe* codes from internal/errors.
// FailureCode extracts the code so callers can branch on the failure class
// without unwrapping; anything that is not a typed probe failure counts
// as ErrProbeUnknown.
func FailureCode(err error) errors.ErrorCode {
	switch code := errors.CodeOf(err); code {
	case errors.ErrProbeUnsupported,
		errors.ErrProbePermissionDenied,
		errors.ErrProbeDeviceAbsent,
		errors.ErrProbeDataQuality:
		return code
	default:
		return errors.ErrProbeUnknown
	}
}

func failUnsupported(detail string) error {
	return errors.New().WithData(errors.ErrProbeUnsupported, detail)
}

func failPermissionDenied(detail string) error {
	return errors.New().WithData(errors.ErrProbePermissionDenied, detail)
}

func failDeviceAbsent(detail string) error {
	return errors.New().WithData(errors.ErrProbeDeviceAbsent, detail)
}

func failDataQuality(detail string) error {
	return errors.New().WithData(errors.ErrProbeDataQuality, detail)
}

// translate converts a raw platform error into a typed probe failure.
func translate(op string, err error) error {
	errFactory := errors.New()

	switch {
	case os.IsPermission(err):
		return errFactory.WithData(errors.ErrProbePermissionDenied, op)
	case os.IsNotExist(err):
		return errFactory.WithData(errors.ErrProbeUnsupported, op)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errFactory.Wrap(errors.ErrProbeUnknown, err)
	default:
		return errFactory.Wrap(errors.ErrProbeUnknown, err)
	}
}
