package directives

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fash/cmds"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/fashconfigs"
	"github.com/reusee/fash/vars"
)

type Module struct {
	dscope.Module
	Configs fashconfigs.Module
}

var protocolFlag Protocol

func init() {
	cmds.Define("-protocol", cmds.Func(func(s string) error {
		p, err := ParseProtocol(s)
		if err != nil {
			return err
		}
		protocolFlag = p
		return nil
	}).Desc("response protocol, json or markup"))
}

func (Module) Protocol(
	loader configs.Loader,
) Protocol {
	return vars.FirstNonZero(
		protocolFlag,
		configs.First[Protocol](loader, "protocol"),
		ProtocolJSON,
	)
}
