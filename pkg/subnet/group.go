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

// Group assigns each address to its minimal subnet: the most specific subnet, with at
// least minHostBits host bits, in which the address is neither the network nor the
// broadcast address. addrs must be sorted and de-duplicated; reserved addresses
// (0.0.0.0 and 255.255.255.255) are skipped. Keys appear in first-encounter order.
func Group(addrs []Address, minHostBits int) *Children {
	groups := NewChildren()
	for _, addr := range addrs {
		if addr.IsReserved() {
			continue
		}
		key := minimalSubnet(addr, minHostBits)
		leaf, _ := groups.Get(key)
		groups.Set(key, NewLeaf(append(leaf.Addresses(), addr)))
	}
	return groups
}

func minimalSubnet(addr Address, hostBits int) Key {
	a := uint64(addr)
	for {
		low := uint64(1)<<hostBits - 1
		network := a &^ low
		if a != network && (a+1)&low != 0 {
			break
		}
		hostBits++
	}
	return KeyFromHostBits(addr, hostBits)
}
