package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmnetdev/pkg/netdev"
)

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "devices.json"))

	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "devices.json"))

	saved := []*netdev.ConfigRecord{
		netdev.New(netdev.SharedConfig{}),
		netdev.New(netdev.BridgedConfig{Interface: "en0"}),
		netdev.New(netdev.FileDeviceConfig{Path: "/tmp/net.sock"}),
	}
	require.NoError(t, s.Save(saved))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	for i, rec := range loaded {
		assert.Equal(t, saved[i].Mode(), rec.Mode())
		assert.Equal(t, saved[i].MacAddress, rec.MacAddress)
		assert.Equal(t, saved[i].Payload, rec.Payload)
	}
}

func TestSaveReplaces(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "devices.json"))

	require.NoError(t, s.Save([]*netdev.ConfigRecord{
		netdev.New(netdev.SharedConfig{}),
		netdev.New(netdev.SharedConfig{}),
	}))
	require.NoError(t, s.Save([]*netdev.ConfigRecord{
		netdev.New(netdev.BridgedConfig{Interface: "en1"}),
	}))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, netdev.Bridged, loaded[0].Mode())
}
