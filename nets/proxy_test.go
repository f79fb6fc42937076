package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/modes"
)

func TestProxyDisabledInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks://127.0.0.1:1080")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		addr ProxyAddr,
		getDialer GetProxyDialer,
	) {
		if addr != "" {
			t.Fatalf("got %s", addr)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if dialer == nil {
			t.Fatal()
		}
	})
}

func TestGetProxyURL(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %s", u.Scheme)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})
}
