package prompts

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fash/directives"
	"github.com/reusee/fash/fashconfigs"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/personas"
)

type Module struct {
	dscope.Module
	Configs    fashconfigs.Module
	Directives directives.Module
	Personas   personas.Module
	Logs       logs.Module
}
