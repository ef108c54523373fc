package nic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MAC is a 48-bit MAC address packed little-endian: the first octet of the
// textual form is the least significant byte.
type MAC uint64

// BroadcastMAC is the all-ones address.
const BroadcastMAC MAC = 0xffffffffffff

// ParseMAC parses a colon-separated hex sextet such as "de:ad:be:ef:00:01".
func ParseMAC(s string) (MAC, error) {
	octets := strings.Split(s, ":")
	if len(octets) != 6 {
		return 0, errors.Errorf("mac address %q must have 6 octets", s)
	}

	var mac MAC

	for i, o := range octets {
		if len(o) == 0 || len(o) > 2 {
			return 0, errors.Errorf("mac address %q has bad octet %q", s, o)
		}

		v, err := strconv.ParseUint(o, 16, 8)
		if err != nil {
			return 0, errors.Wrapf(err, "mac address %q", s)
		}

		mac |= MAC(v) << (8 * i)
	}

	return mac, nil
}

// IsZero reports whether the address is unset.
func (m MAC) IsZero() bool {
	return m == 0
}

// Lo returns the low 32 bits of the packed address.
func (m MAC) Lo() uint32 {
	return uint32(m)
}

// Hi returns the high 16 bits of the packed address.
func (m MAC) Hi() uint32 {
	return uint32(m>>32) & 0xffff
}

func (m MAC) String() string {
	parts := make([]string, 6)
	for i := range parts {
		parts[i] = fmt.Sprintf("%02x", byte(m>>(8*i)))
	}

	return strings.Join(parts, ":")
}

// frameDst extracts the destination address from the first link unit of a
// frame, whose low six bytes hold the Ethernet destination.
func frameDst(firstUnit uint64) MAC {
	return MAC(firstUnit) & BroadcastMAC
}
