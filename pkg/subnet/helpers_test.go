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
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustAddr(t *testing.T, s string) Address {
	t.Helper()
	a, err := ParseAddress(s)
	require.NoError(t, err)
	return a
}

func mustAddrs(t *testing.T, ss ...string) []Address {
	t.Helper()
	out := make([]Address, 0, len(ss))
	for _, s := range ss {
		out = append(out, mustAddr(t, s))
	}
	return out
}

func mustKey(t *testing.T, cidr string) Key {
	t.Helper()
	prefix, err := netip.ParsePrefix(cidr)
	require.NoError(t, err)
	addr, ok := AddressFromAddr(prefix.Addr())
	require.True(t, ok, "not an IPv4 cidr: %s", cidr)
	k := NewKey(addr, prefix.Bits())
	require.Equal(t, cidr, k.String(), "non canonical cidr")
	return k
}

func leaf(t *testing.T, ss ...string) Node {
	t.Helper()
	return NewLeaf(mustAddrs(t, ss...))
}

func branch(t *testing.T, kv ...interface{}) Node {
	t.Helper()
	require.Zero(t, len(kv)%2)
	c := NewChildren()
	for i := 0; i < len(kv); i += 2 {
		c.Set(mustKey(t, kv[i].(string)), kv[i+1].(Node))
	}
	return NewInternal(c)
}

// render gives a compact textual form of a tree, used to compare shapes.
func render(n Node) interface{} {
	if n.IsLeaf() {
		return Strings(n.Addresses())
	}
	out := []interface{}{}
	for _, e := range n.Children().Entries() {
		out = append(out, e.Key.String(), render(e.Node))
	}
	return out
}

func assertNoSingleEntryBranch(t *testing.T, n Node, isRoot bool) {
	t.Helper()
	if n.IsLeaf() {
		return
	}
	if n.Children().Len() == 1 {
		require.True(t, isRoot && n.Children().At(0).Node.IsLeaf(), "single-entry branch found: %v", render(n))
	}
	for _, e := range n.Children().Entries() {
		assertNoSingleEntryBranch(t, e.Node, false)
	}
}
