// Package attachment translates network device records into the runtime
// objects the virtualization layer consumes, and reads them back.
package attachment

import (
	"net"
	"os"
)

// Attachment connects a virtual network device to a concrete transport.
// The recognized variants are *NAT, *Bridged and *FileHandle; anything
// else belongs to some other subsystem.
type Attachment interface {
	MACAddress() net.HardwareAddr
	// Close releases any OS resource the attachment owns. Safe to call
	// more than once.
	Close() error
}

// NAT attaches the device to the host-provided address translation
// service.
type NAT struct {
	mac net.HardwareAddr
}

func (a *NAT) MACAddress() net.HardwareAddr { return a.mac }
func (a *NAT) Close() error                 { return nil }

// Bridged attaches the device to a physical host interface. The
// interface was resolved against live host state when the attachment
// was built.
type Bridged struct {
	mac   net.HardwareAddr
	iface HostInterface
}

func (a *Bridged) MACAddress() net.HardwareAddr { return a.mac }
func (a *Bridged) Interface() HostInterface     { return a.iface }
func (a *Bridged) Close() error                 { return nil }

// FileHandle attaches the device to an open UNIX datagram socket. It
// owns the descriptor until Close.
type FileHandle struct {
	mac  net.HardwareAddr
	file *os.File
}

func (a *FileHandle) MACAddress() net.HardwareAddr { return a.mac }

// File exposes the owned descriptor for handoff to the virtualization
// layer. The attachment keeps ownership.
func (a *FileHandle) File() *os.File { return a.file }

func (a *FileHandle) Close() error {
	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

// HostInterface is one bridge-capable host network interface.
type HostInterface interface {
	Identifier() string
}

// InterfaceSource enumerates the host interfaces currently available
// for bridging. Build queries it fresh on every call so bridging always
// tracks current hardware state.
type InterfaceSource interface {
	Interfaces() []HostInterface
}
