package executors

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fash/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
