package netdev

import (
	"github.com/google/uuid"
)

// Payload holds the settings that only exist for one mode. Exactly one
// variant is attached to a record at a time, so a consumer never has to
// decide which of several optional fields is the live one.
type Payload interface {
	mode() Mode
}

// SharedConfig is the payload for NAT mode. It carries no settings.
type SharedConfig struct{}

// BridgedConfig names the host interface to bridge with. An empty
// Interface means "pick a default when the attachment is built".
type BridgedConfig struct {
	Interface string
}

// FileDeviceConfig points at the UNIX domain socket the device's
// traffic is sent over.
type FileDeviceConfig struct {
	Path string
}

func (SharedConfig) mode() Mode     { return Shared }
func (BridgedConfig) mode() Mode    { return Bridged }
func (FileDeviceConfig) mode() Mode { return FileDevice }

// ConfigRecord is the persisted configuration of one virtual network
// device. The ID is process-local only, used for list binding in the
// owning application, and is regenerated every time a record is created
// or decoded.
type ConfigRecord struct {
	ID         string
	MacAddress string
	Payload    Payload
}

// New creates a record for the given payload with a fresh ID and a
// random locally-administered MAC address.
func New(payload Payload) *ConfigRecord {
	return NewWithMAC(RandomMAC(), payload)
}

// NewWithMAC creates a record carrying the given MAC address verbatim.
// The address is not validated here; translation to an attachment is
// where validation happens.
func NewWithMAC(mac string, payload Payload) *ConfigRecord {
	return &ConfigRecord{
		ID:         uuid.NewString(),
		MacAddress: mac,
		Payload:    payload,
	}
}

// Mode reports which network mode the record selects.
func (r *ConfigRecord) Mode() Mode {
	return r.Payload.mode()
}
