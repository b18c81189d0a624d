/*
 * Copyright (C) 2025 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package subnet

import (
	"fmt"
	"math/bits"
	"net/netip"
)

// Key identifies a subnet by its network address and prefix length.
// The host bits of Network are always zero.
type Key struct {
	Network   Address
	PrefixLen uint8
}

// NewKey returns the subnet of the given prefix length enclosing addr.
func NewKey(addr Address, prefixLen int) Key {
	return Key{Network: addr & mask(prefixLen), PrefixLen: uint8(prefixLen)}
}

// KeyFromHostBits returns the subnet with hostBits host bits enclosing addr.
func KeyFromHostBits(addr Address, hostBits int) Key {
	return NewKey(addr, 32-hostBits)
}

func mask(prefixLen int) Address {
	if prefixLen <= 0 {
		return 0
	}
	return Address(^uint32(0) << (32 - prefixLen))
}

// HostBits is 32 minus the prefix length.
func (k Key) HostBits() int {
	return 32 - int(k.PrefixLen)
}

// Mask returns the network mask.
func (k Key) Mask() Address {
	return mask(int(k.PrefixLen))
}

// Broadcast returns the all-ones host address of the subnet.
func (k Key) Broadcast() Address {
	return k.Network | ^k.Mask()
}

// Contains reports whether addr lies inside the subnet.
func (k Key) Contains(addr Address) bool {
	return addr&k.Mask() == k.Network
}

// Prefix converts to a netip.Prefix.
func (k Key) Prefix() netip.Prefix {
	return netip.PrefixFrom(k.Network.Addr(), int(k.PrefixLen))
}

// String returns the CIDR notation, e.g. "10.0.0.0/30".
func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.Network, k.PrefixLen)
}

// CommonSupernet returns the smallest subnet containing every address.
// It panics on an empty slice.
func CommonSupernet(addrs []Address) Key {
	lo, hi := addrs[0], addrs[0]
	for _, a := range addrs[1:] {
		lo = min(lo, a)
		hi = max(hi, a)
	}
	return NewKey(lo, bits.LeadingZeros32(uint32(lo^hi)))
}
