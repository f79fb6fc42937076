package storages

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fash/fashconfigs"
	"github.com/reusee/fash/logs"
)

type Module struct {
	dscope.Module
	Configs fashconfigs.Module
	Logs    logs.Module
}
