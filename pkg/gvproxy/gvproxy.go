// Package gvproxy serves a user-mode network stack on a UNIX datagram
// endpoint. It is the listener side of file-device mode: a device whose
// record points at the endpoint path gets its traffic carried into the
// gvisor-tap-vsock virtual network.
package gvproxy

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/containers/gvisor-tap-vsock/pkg/transport"
	gvptypes "github.com/containers/gvisor-tap-vsock/pkg/types"
	"github.com/containers/gvisor-tap-vsock/pkg/virtualnetwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	subNet         = "192.168.127.0/24"
	gatewayIP      = "192.168.127.1"
	gatewayMacAddr = "5a:94:ef:e4:0c:dd"
	guestIPAddr    = "192.168.127.2"
	guestMacAddr   = "5a:94:ef:e4:0c:ee"
)

// Endpoint is one unixgram network backend.
type Endpoint struct {
	// Path is the filesystem path of the datagram socket. File-device
	// records connect to it.
	Path string
}

func newConfigure() *gvptypes.Configuration {
	return &gvptypes.Configuration{
		Debug:             false,
		MTU:               1500,
		Subnet:            subNet,
		GatewayIP:         gatewayIP,
		GatewayMacAddress: gatewayMacAddr,
		DHCPStaticLeases: map[string]string{
			guestIPAddr: guestMacAddr,
		},
		GatewayVirtualIPs: []string{gatewayIP},
		Protocol:          gvptypes.VfkitProtocol,
	}
}

// Serve listens on the endpoint path and runs the network stack until
// ctx is cancelled. The socket file is removed on shutdown.
func (e *Endpoint) Serve(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(e.Path), 0755); err != nil {
		return fmt.Errorf("failed to create dir for unix socket file %q: %w", e.Path, err)
	}

	vn, err := virtualnetwork.New(newConfigure())
	if err != nil {
		return fmt.Errorf("failed to create virtual network: %w", err)
	}

	endpoint := fmt.Sprintf("unixgram://%s", e.Path)
	logrus.Infof("listen network backend: %q", endpoint)
	conn, err := transport.ListenUnixgram(endpoint)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", endpoint, err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		logrus.Infof("close network backend on %q", e.Path)
		if err := conn.Close(); err != nil {
			logrus.Errorf("error closing %q: %v", e.Path, err)
		}

		uri, err := url.Parse(endpoint)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", endpoint, err)
		}
		return os.Remove(uri.Path)
	})

	g.Go(func() error {
		vfkitConn, err := transport.AcceptVfkit(conn)
		if err != nil {
			return fmt.Errorf("failed to accept connection on %q: %w", e.Path, err)
		}
		logrus.Infof("accept connection on %q", e.Path)
		return vn.AcceptVfkit(ctx, vfkitConn)
	})

	return g.Wait()
}
