package nets

import (
	"context"
	"net"
	"time"

	"github.com/reusee/fash/logs"
)

// Dialer opens the connections of model gateway clients
type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

type DialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network string, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

const dialTimeout = 30 * time.Second

// Dialer connects local endpoints like ollama directly and everything else through the proxy, if any
func (Module) Dialer(
	proxyAddr ProxyAddr,
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Dialer {
	direct := &net.Dialer{
		Timeout: dialTimeout,
	}
	if proxyAddr == "" {
		return direct
	}
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		isLocal, err := isLocalAddr(addr)
		if err != nil {
			return nil, err
		}
		if isLocal {
			logger.DebugContext(ctx, "dial direct", "addr", addr)
			return direct.DialContext(ctx, network, addr)
		}
		proxyDialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "dial through proxy", "addr", addr)
		return proxyDialer.DialContext(ctx, network, addr)
	})
}
