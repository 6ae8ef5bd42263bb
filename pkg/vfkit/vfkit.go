// Package vfkit renders network device records for the vfkit command
// line backend.
package vfkit

import (
	"errors"
	"fmt"

	"github.com/crc-org/vfkit/pkg/config"

	"vmnetdev/pkg/attachment"
	"vmnetdev/pkg/netdev"
)

// ErrUnsupportedMode reports a mode the vfkit command line cannot
// express. Bridging is not part of vfkit's device vocabulary.
var ErrUnsupportedMode = errors.New("mode not supported by the vfkit backend")

// Device builds the virtio-net device for a record. vfkit dials the
// unix socket itself, so unlike the virtualization-framework path no
// descriptor is opened here.
func Device(rec *netdev.ConfigRecord) (config.VirtioDevice, error) {
	if err := netdev.ValidateMAC(rec.MacAddress); err != nil {
		return nil, fmt.Errorf("%w: %v", attachment.ErrInvalidMac, err)
	}

	dev, err := config.VirtioNetNew(rec.MacAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtio-net device: %w", err)
	}

	switch p := rec.Payload.(type) {
	case netdev.SharedConfig:
		// VirtioNetNew defaults to NAT
		return dev, nil
	case netdev.FileDeviceConfig:
		if p.Path == "" {
			return nil, attachment.ErrMissingPath
		}
		dev.SetUnixSocketPath(p.Path)
		return dev, nil
	case netdev.BridgedConfig:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, rec.Mode())
	default:
		return nil, fmt.Errorf("unsupported payload type %T", rec.Payload)
	}
}
