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
	"net/netip"
	"slices"
	"strconv"
	"strings"
)

// Address is an IPv4 address in host byte order.
type Address uint32

const (
	// reservedLow and reservedHigh are never grouped nor reported
	reservedLow  Address = 0
	reservedHigh Address = 1<<32 - 1
)

// InputFormatError reports a record that is not a dotted-decimal IPv4 address.
type InputFormatError struct {
	Record   string
	Position int
	Reason   string
}

func (e *InputFormatError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("record %d: invalid address %q: %s", e.Position, e.Record, e.Reason)
	}
	return fmt.Sprintf("invalid address %q: %s", e.Record, e.Reason)
}

// ParseAddress converts a dotted-decimal string such as "10.0.0.1" into an Address.
// Exactly four decimal octets in [0,255] are accepted.
func ParseAddress(s string) (Address, error) {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return 0, &InputFormatError{Record: s, Reason: fmt.Sprintf("expected 4 octets, got %d", len(octets))}
	}
	var addr Address
	for _, o := range octets {
		v, err := strconv.ParseUint(strings.TrimSpace(o), 10, 8)
		if err != nil {
			return 0, &InputFormatError{Record: s, Reason: fmt.Sprintf("octet %q is not a number in [0,255]", o)}
		}
		addr = addr<<8 | Address(v)
	}
	return addr, nil
}

// String returns the dotted-decimal form.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// Addr converts to the standard library representation.
func (a Address) Addr() netip.Addr {
	return netip.AddrFrom4([4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)})
}

// AddressFromAddr converts an IPv4 netip.Addr. The second value is false for anything else.
func AddressFromAddr(ip netip.Addr) (Address, bool) {
	ip = ip.Unmap()
	if !ip.Is4() {
		return 0, false
	}
	b := ip.As4()
	return Address(b[0])<<24 | Address(b[1])<<16 | Address(b[2])<<8 | Address(b[3]), true
}

// IsReserved is true for 0.0.0.0 and 255.255.255.255.
func (a Address) IsReserved() bool {
	return a == reservedLow || a == reservedHigh
}

// ParseAddresses parses every record and returns the sorted, de-duplicated address set.
// Blank records are skipped but still counted, so that the Position of the
// *InputFormatError aborting on the first malformed record is its line number.
func ParseAddresses(records []string) ([]Address, error) {
	addrs := make([]Address, 0, len(records))
	for i, r := range records {
		if isBlank(r) {
			continue
		}
		a, err := ParseAddress(r)
		if err != nil {
			if ife, ok := err.(*InputFormatError); ok {
				ife.Position = i + 1
			}
			return nil, err
		}
		addrs = append(addrs, a)
	}
	slices.Sort(addrs)
	return slices.Compact(addrs), nil
}

// CountRecords returns the number of non-blank records.
func CountRecords(records []string) int {
	n := 0
	for _, r := range records {
		if !isBlank(r) {
			n++
		}
	}
	return n
}

func isBlank(r string) bool {
	return strings.TrimSpace(r) == ""
}

// Strings formats a list of addresses.
func Strings(addrs []Address) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.String())
	}
	return out
}
