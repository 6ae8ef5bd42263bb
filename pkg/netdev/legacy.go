package netdev

// LegacyMode is the two-valued mode of the pre-versioned schema. File
// device mode postdates it, so no legacy value maps there.
type LegacyMode int

const (
	LegacyShared LegacyMode = iota
	LegacyBridged
)

// LegacyNetworkConfig is one device entry of the old schema.
type LegacyNetworkConfig struct {
	NetworkMode               LegacyMode
	MacAddress                string
	BridgeInterfaceIdentifier string
}

// Migrate converts an old record into the current schema. The MAC
// address and bridge interface identifier are copied verbatim and not
// validated; a malformed legacy MAC surfaces later as a build failure,
// never as a migration failure.
func Migrate(old LegacyNetworkConfig) *ConfigRecord {
	var payload Payload
	switch old.NetworkMode {
	case LegacyBridged:
		payload = BridgedConfig{Interface: old.BridgeInterfaceIdentifier}
	default:
		payload = SharedConfig{}
	}
	return NewWithMAC(old.MacAddress, payload)
}
