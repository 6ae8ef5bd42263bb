package attachment

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/sirupsen/logrus"

	"vmnetdev/pkg/netdev"
	"vmnetdev/pkg/unixgram"
)

var (
	ErrInvalidMac        = errors.New("invalid mac address")
	ErrInterfaceNotFound = errors.New("bridge interface not found")
	ErrNoInterfaces      = errors.New("no bridge interfaces available")
	ErrMissingPath       = errors.New("file device path not set")
)

// Translator maps config records to attachments and back. The zero
// value is not usable; interface enumeration must be supplied so the
// bridged path can resolve against live host state.
type Translator struct {
	source  InterfaceSource
	connect func(string) (*os.File, error)
}

func NewTranslator(source InterfaceSource) *Translator {
	return &Translator{
		source:  source,
		connect: unixgram.Connect,
	}
}

// Build turns a record into a live attachment. It is single-pass: it
// either returns a fully constructed attachment or an error with no OS
// resource left open. The record itself is read-only input.
func (t *Translator) Build(rec *netdev.ConfigRecord) (Attachment, error) {
	if err := netdev.ValidateMAC(rec.MacAddress); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMac, err)
	}
	mac, err := net.ParseMAC(rec.MacAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMac, err)
	}

	switch p := rec.Payload.(type) {
	case netdev.SharedConfig:
		return &NAT{mac: mac}, nil

	case netdev.BridgedConfig:
		iface, err := t.resolveInterface(p.Interface)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("bridging device %s to host interface %q", rec.MacAddress, iface.Identifier())
		return &Bridged{mac: mac, iface: iface}, nil

	case netdev.FileDeviceConfig:
		if p.Path == "" {
			return nil, ErrMissingPath
		}
		file, err := t.connect(p.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file device socket: %w", err)
		}
		return &FileHandle{mac: mac, file: file}, nil

	default:
		return nil, fmt.Errorf("unsupported payload type %T", rec.Payload)
	}
}

// resolveInterface queries the host fresh on every call. An empty id
// selects the first available interface.
func (t *Translator) resolveInterface(id string) (HostInterface, error) {
	ifaces := t.source.Interfaces()
	if id == "" {
		if len(ifaces) == 0 {
			return nil, ErrNoInterfaces
		}
		return ifaces[0], nil
	}
	for _, iface := range ifaces {
		if iface.Identifier() == id {
			return iface, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInterfaceNotFound, id)
}

// Read inspects an attachment and reconstructs the record that would
// build it. The second return value is false when the attachment is not
// one this system manages; that is a filtering signal, not an error.
//
// A file-handle attachment carries only an open descriptor, so the
// originating socket path cannot be recovered and is left empty.
func (t *Translator) Read(att Attachment) (*netdev.ConfigRecord, bool) {
	switch a := att.(type) {
	case *NAT:
		return netdev.NewWithMAC(a.MACAddress().String(), netdev.SharedConfig{}), true
	case *Bridged:
		return netdev.NewWithMAC(a.MACAddress().String(), netdev.BridgedConfig{Interface: a.Interface().Identifier()}), true
	case *FileHandle:
		return netdev.NewWithMAC(a.MACAddress().String(), netdev.FileDeviceConfig{}), true
	default:
		return nil, false
	}
}
