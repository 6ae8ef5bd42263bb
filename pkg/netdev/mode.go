package netdev

import "fmt"

// Mode selects how a virtual network device reaches the outside world.
type Mode int

const (
	// Shared gives the device host-provided NAT.
	Shared Mode = iota
	// Bridged shares a physical host network interface with the device.
	Bridged
	// FileDevice carries the device's traffic over a UNIX domain
	// datagram socket to an external process.
	FileDevice
)

func (m Mode) String() string {
	switch m {
	case Shared:
		return "Shared"
	case Bridged:
		return "Bridged"
	case FileDevice:
		return "FileDevice"
	default:
		return "unknown"
	}
}

// ParseMode converts the persisted mode string back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "Shared":
		return Shared, nil
	case "Bridged":
		return Bridged, nil
	case "FileDevice":
		return FileDevice, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
