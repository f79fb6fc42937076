package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fash/debugs"
	"github.com/reusee/fash/directives"
	"github.com/reusee/fash/executors"
	"github.com/reusee/fash/fashconfigs"
	"github.com/reusee/fash/generators"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/metrics"
	"github.com/reusee/fash/prompts"
	"github.com/reusee/fash/storages"
)

type Module struct {
	dscope.Module
	Configs    fashconfigs.Module
	Debugs     debugs.Module
	Directives directives.Module
	Executors  executors.Module
	Generators generators.Module
	Logs       logs.Module
	Metrics    metrics.Module
	Prompts    prompts.Module
	Storages   storages.Module
}
