package observability

import (
	"os"

	"github.com/grafana/pyroscope-go"

	"subflix/pkg/logger"
)

// StartProfiling attaches the process to a pyroscope server when one is
// configured. Continuous profiling is opt-in; without a server address this is
// a no-op.
func StartProfiling(appName string, enabled bool, serverAddress string) {
	if !enabled {
		return
	}
	if serverAddress == "" {
		serverAddress = os.Getenv("PYROSCOPE_SERVER_ADDRESS")
	}
	if serverAddress == "" {
		return
	}

	_, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   serverAddress,
		Logger:          nil,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
		},
	})
	if err != nil {
		logger.Warnf("pyroscope profiling disabled: %v", err)
	}
}
