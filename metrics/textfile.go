package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/reusee/fash/cmds"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/vars"
)

var metricsFileFlag = cmds.Var[string]("-metrics-file", "write run metrics in the Prometheus text format to this file")

// File is the textfile metrics are written to, empty to disable
type File string

func (Module) File(
	loader configs.Loader,
) File {
	return vars.FirstNonZero(
		File(*metricsFileFlag),
		configs.First[File](loader, "metrics_file"),
	)
}

type WriteFile func() error

func (Module) WriteFile(
	file File,
	m *Metrics,
	logger logs.Logger,
) WriteFile {
	return func() error {
		if file == "" {
			return nil
		}
		if err := prometheus.WriteToTextfile(string(file), m.Registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", file)
		return nil
	}
}
