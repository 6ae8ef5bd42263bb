package netdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateBridged(t *testing.T) {
	rec := Migrate(LegacyNetworkConfig{
		NetworkMode:               LegacyBridged,
		MacAddress:                "AA:BB:CC:DD:EE:FF",
		BridgeInterfaceIdentifier: "en0",
	})

	assert.Equal(t, Bridged, rec.Mode())
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", rec.MacAddress)
	assert.Equal(t, BridgedConfig{Interface: "en0"}, rec.Payload)
	assert.NotEmpty(t, rec.ID)
}

func TestMigrateShared(t *testing.T) {
	rec := Migrate(LegacyNetworkConfig{
		NetworkMode: LegacyShared,
		MacAddress:  "5a:94:ef:e4:0c:ee",
	})

	assert.Equal(t, Shared, rec.Mode())
	assert.Equal(t, "5a:94:ef:e4:0c:ee", rec.MacAddress)
	assert.Equal(t, SharedConfig{}, rec.Payload)
}

func TestMigrateCarriesMalformedMACVerbatim(t *testing.T) {
	// Migration never validates; a bad legacy MAC surfaces at build time.
	rec := Migrate(LegacyNetworkConfig{
		NetworkMode: LegacyShared,
		MacAddress:  "not-a-mac",
	})
	assert.Equal(t, "not-a-mac", rec.MacAddress)
}
