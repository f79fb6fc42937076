package sessions

import (
	"github.com/reusee/fash/cmds"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/vars"
)

var (
	maxRoundsFlag    = cmds.Var[int]("-max-rounds", "abort after this many rounds without end, 0 for unlimited")
	parseRetriesFlag = cmds.Var[int]("-parse-retries", "consecutive unparsable responses to correct before aborting")
	tapFlag          = cmds.Switch("-tap", "open a Starlark REPL after each round")
)

// MaxRounds bounds the rounds of a session, 0 for unlimited
type MaxRounds int

func (Module) MaxRounds(
	loader configs.Loader,
) MaxRounds {
	return vars.FirstNonZero(
		MaxRounds(*maxRoundsFlag),
		configs.First[MaxRounds](loader, "max_rounds"),
	)
}

// ParseRetries is the number of consecutive parse failures answered with a correction instead of aborting
type ParseRetries int

func (Module) ParseRetries(
	loader configs.Loader,
) ParseRetries {
	return vars.FirstNonZero(
		ParseRetries(*parseRetriesFlag),
		configs.First[ParseRetries](loader, "parse_retries"),
	)
}

type TapEnabled bool

func (Module) TapEnabled() TapEnabled {
	return TapEnabled(*tapFlag)
}
