package generators

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fash/fashconfigs"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/nets"
)

type Module struct {
	dscope.Module
	Configs fashconfigs.Module
	Nets    nets.Module
	Logs    logs.Module
}
