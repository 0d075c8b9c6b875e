package hwinfo

import (
	"context"
	"os/exec"
	"strings"
)

// healthFunc resolves a block device to a health token. Injectable so tests
// can exercise disk enumeration without a SMART-capable device.
type healthFunc func(ctx context.Context, device string) string

// smartHealth queries the drive's SMART self-assessment. smartctl exits
// nonzero for failing drives, so the output is parsed regardless of the
// exit status.
func smartHealth(ctx context.Context, device string) string {
	out, _ := exec.CommandContext(ctx, "smartctl", "-H", device).CombinedOutput()
	text := string(out)

	switch {
	case strings.Contains(text, "PASSED"), strings.Contains(text, "SMART Health Status: OK"):
		return HealthHealthy
	case strings.Contains(text, "FAILED"):
		return "Failed"
	default:
		return "Unknown"
	}
}
