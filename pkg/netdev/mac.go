package netdev

import (
	"crypto/rand"
	"fmt"
	"net"
)

// RandomMAC returns a random 48-bit MAC address in colon-hex form with
// the locally-administered bit set and the multicast bit cleared.
func RandomMAC() string {
	buf := make([]byte, 6)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(buf)
	buf[0] = (buf[0] | 0x02) &^ 0x01
	return net.HardwareAddr(buf).String()
}

// ValidateMAC checks that s is a syntactically valid 48-bit MAC address
// suitable for a virtual device: colon-hex, unicast, locally
// administered.
func ValidateMAC(s string) error {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return fmt.Errorf("failed to parse mac address %q: %w", s, err)
	}
	if len(hw) != 6 {
		return fmt.Errorf("mac address %q is not 48 bits", s)
	}
	if hw[0]&0x01 != 0 {
		return fmt.Errorf("mac address %q is a multicast address", s)
	}
	if hw[0]&0x02 == 0 {
		return fmt.Errorf("mac address %q is not locally administered", s)
	}
	return nil
}
