package sessions

import (
	"fmt"
	"time"

	"github.com/reusee/fash/cmds"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/vars"
)

var logDirFlag = cmds.Var[string]("-log-dir", "write a JSON log file per run into this directory")

// LogDir holds per-run log files, empty to disable
type LogDir string

func (Module) LogDir(
	loader configs.Loader,
) LogDir {
	return vars.FirstNonZero(
		LogDir(*logDirFlag),
		configs.First[LogDir](loader, "log_dir"),
	)
}

func LogFileName(t time.Time, id SessionID) string {
	return fmt.Sprintf("fash_%s_%s.log", t.Format("20060102_150405"), id)
}
