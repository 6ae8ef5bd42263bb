package vfkit

import (
	"testing"

	"github.com/crc-org/vfkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmnetdev/pkg/attachment"
	"vmnetdev/pkg/netdev"
)

const testMAC = "5a:94:ef:e4:0c:ee"

func TestDeviceShared(t *testing.T) {
	dev, err := Device(netdev.NewWithMAC(testMAC, netdev.SharedConfig{}))
	require.NoError(t, err)

	net, ok := dev.(*config.VirtioNet)
	require.True(t, ok)
	assert.True(t, net.Nat)
	assert.Equal(t, testMAC, net.MacAddress.String())
	assert.Empty(t, net.UnixSocketPath)
}

func TestDeviceFileDevice(t *testing.T) {
	dev, err := Device(netdev.NewWithMAC(testMAC, netdev.FileDeviceConfig{Path: "/tmp/net.sock"}))
	require.NoError(t, err)

	net, ok := dev.(*config.VirtioNet)
	require.True(t, ok)
	assert.False(t, net.Nat)
	assert.Equal(t, "/tmp/net.sock", net.UnixSocketPath)
}

func TestDeviceFileDeviceMissingPath(t *testing.T) {
	dev, err := Device(netdev.NewWithMAC(testMAC, netdev.FileDeviceConfig{}))
	assert.Nil(t, dev)
	assert.ErrorIs(t, err, attachment.ErrMissingPath)
}

func TestDeviceBridgedUnsupported(t *testing.T) {
	dev, err := Device(netdev.NewWithMAC(testMAC, netdev.BridgedConfig{Interface: "en0"}))
	assert.Nil(t, dev)
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestDeviceInvalidMac(t *testing.T) {
	dev, err := Device(netdev.NewWithMAC("not-a-mac", netdev.SharedConfig{}))
	assert.Nil(t, dev)
	assert.ErrorIs(t, err, attachment.ErrInvalidMac)
}
