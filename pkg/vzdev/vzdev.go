//go:build darwin && (arm64 || amd64)

// Package vzdev hands finished attachments to the Virtualization
// framework.
package vzdev

import (
	"fmt"

	"github.com/Code-Hex/vz/v3"

	"vmnetdev/pkg/attachment"
)

// HostInterfaces enumerates the bridge-capable interfaces the
// Virtualization framework exposes.
type HostInterfaces struct{}

func (HostInterfaces) Interfaces() []attachment.HostInterface {
	nics := vz.NetworkInterfaces()
	out := make([]attachment.HostInterface, 0, len(nics))
	for _, nic := range nics {
		out = append(out, nic)
	}
	return out
}

// DeviceConfiguration converts an attachment into a virtio-net device
// configuration ready to be added to a virtual machine configuration.
// The attachment keeps ownership of any descriptor it carries.
func DeviceConfiguration(att attachment.Attachment) (*vz.VirtioNetworkDeviceConfiguration, error) {
	var (
		vzAtt vz.NetworkDeviceAttachment
		err   error
	)

	switch a := att.(type) {
	case *attachment.NAT:
		vzAtt, err = vz.NewNATNetworkDeviceAttachment()
		if err != nil {
			return nil, fmt.Errorf("failed to create NAT attachment: %w", err)
		}
	case *attachment.Bridged:
		nic, ok := a.Interface().(vz.BridgedNetwork)
		if !ok {
			return nil, fmt.Errorf("bridge interface %q was not enumerated from the virtualization framework", a.Interface().Identifier())
		}
		vzAtt, err = vz.NewBridgedNetworkDeviceAttachment(nic)
		if err != nil {
			return nil, fmt.Errorf("failed to create bridged attachment for %q: %w", nic.Identifier(), err)
		}
	case *attachment.FileHandle:
		vzAtt, err = vz.NewFileHandleNetworkDeviceAttachment(a.File())
		if err != nil {
			return nil, fmt.Errorf("failed to create file handle attachment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported attachment type %T", att)
	}

	devConfig, err := vz.NewVirtioNetworkDeviceConfiguration(vzAtt)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtio-net device configuration: %w", err)
	}

	addr, err := vz.NewMACAddress(att.MACAddress())
	if err != nil {
		return nil, fmt.Errorf("failed to create mac address %q: %w", att.MACAddress(), err)
	}
	devConfig.SetMACAddress(addr)

	return devConfig, nil
}
