package collector

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Visibility describes how much of the process table this run can see
type Visibility struct {
	HostPID    bool
	Privileged bool
}

var (
	vis     Visibility
	visOnce sync.Once
)

// DetectVisibility inspects the environment once and logs the result
func DetectVisibility(logger *zap.SugaredLogger) Visibility {
	visOnce.Do(func() {
		vis = Visibility{
			HostPID:    detectHostPID("/proc/1/cmdline"),
			Privileged: os.Geteuid() == 0,
		}

		logCap(logger, "Host PID", vis.HostPID, "all host processes listed")
		logCap(logger, "Privileged", vis.Privileged, "attributes of other users readable")
	})
	return vis
}

func logCap(logger *zap.SugaredLogger, name string, available bool, desc string) {
	status := "unavailable"
	if available {
		status = "enabled"
	}
	logger.Debugf("%-10s %-11s (%s)", name, status, desc)
}

// detectHostPID reports false when PID 1 looks like this tool or a container
// entrypoint, which means only the container's processes are visible.
func detectHostPID(cmdlinePath string) bool {
	data, err := os.ReadFile(cmdlinePath)
	if err != nil {
		return false
	}
	cmdline := strings.ReplaceAll(string(data), "\x00", " ")
	cmdline = strings.TrimSpace(strings.ToLower(cmdline))

	for _, pid1 := range []string{"init", "systemd", "launchd"} {
		if strings.Contains(cmdline, pid1) {
			return true
		}
	}
	return false
}
