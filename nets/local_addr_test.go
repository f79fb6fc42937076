package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		yes, err := isLocalAddr("127.0.0.1:10000")
		if err != nil {
			t.Fatal(err)
		}
		if !yes {
			t.Fatal()
		}
		yes, err = isLocalAddr("192.168.1.1")
		if err != nil {
			t.Fatal(err)
		}
		if !yes {
			t.Fatal()
		}
		yes, err = isLocalAddr("8.8.8.8:53")
		if err != nil {
			t.Fatal(err)
		}
		if yes {
			t.Fatal()
		}
	})
}
