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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Address
		wantErr  bool
	}{
		{name: "simple", input: "10.0.0.1", expected: 0x0a000001},
		{name: "zero", input: "0.0.0.0", expected: 0},
		{name: "all ones", input: "255.255.255.255", expected: 0xffffffff},
		{name: "leading zeros", input: "010.000.000.001", expected: 0x0a000001},
		{name: "three octets", input: "10.0.0", wantErr: true},
		{name: "five octets", input: "10.0.0.1.1", wantErr: true},
		{name: "not a number", input: "10.0.zero.1", wantErr: true},
		{name: "octet too large", input: "10.0.256.1", wantErr: true},
		{name: "negative octet", input: "10.-1.0.1", wantErr: true},
		{name: "empty octet", input: "10..0.1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := ParseAddress(tt.input)
			if tt.wantErr {
				var ife *InputFormatError
				require.True(t, errors.As(err, &ife))
				require.Equal(t, tt.input, ife.Record)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestAddressRoundTrip(t *testing.T) {
	for input, normalized := range map[string]string{
		"1.2.3.4":         "1.2.3.4",
		"192.168.001.010": "192.168.1.10",
		"255.255.255.255": "255.255.255.255",
		"0.0.0.0":         "0.0.0.0",
		"172.16.254.1":    "172.16.254.1",
	} {
		a, err := ParseAddress(input)
		require.NoError(t, err)
		assert.Equal(t, normalized, a.String())
		back, err := ParseAddress(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
}

func TestAddressNetip(t *testing.T) {
	a := mustAddr(t, "192.168.1.20")
	require.Equal(t, "192.168.1.20", a.Addr().String())
	back, ok := AddressFromAddr(a.Addr())
	require.True(t, ok)
	require.Equal(t, a, back)
}

func TestParseAddresses(t *testing.T) {
	addrs, err := ParseAddresses([]string{"10.0.0.3", "10.0.0.1", "10.0.0.3", "9.255.255.255"})
	require.NoError(t, err)
	require.Equal(t, []string{"9.255.255.255", "10.0.0.1", "10.0.0.3"}, Strings(addrs))

	_, err = ParseAddresses([]string{"10.0.0.1", "10.0.0.2", "bad"})
	var ife *InputFormatError
	require.True(t, errors.As(err, &ife))
	require.Equal(t, 3, ife.Position)
	require.Contains(t, err.Error(), "record 3")

	// blank records are skipped and keep the line numbering
	addrs, err = ParseAddresses([]string{"", "10.0.0.1", "  ", "10.0.0.2"})
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, Strings(addrs))
	_, err = ParseAddresses([]string{"10.0.0.1", "", "", "10.0.0"})
	require.True(t, errors.As(err, &ife))
	require.Equal(t, 4, ife.Position)
	require.Equal(t, 2, CountRecords([]string{"", "10.0.0.1", "\t", "10.0.0"}))

	addrs, err = ParseAddresses(nil)
	require.NoError(t, err)
	require.Empty(t, addrs)
}

func TestKey(t *testing.T) {
	k := NewKey(mustAddr(t, "10.1.2.3"), 24)
	require.Equal(t, "10.1.2.0/24", k.String())
	require.Equal(t, 8, k.HostBits())
	require.Equal(t, "10.1.2.255", k.Broadcast().String())
	require.True(t, k.Contains(mustAddr(t, "10.1.2.200")))
	require.False(t, k.Contains(mustAddr(t, "10.1.3.1")))
	require.Equal(t, "10.1.2.0/24", k.Prefix().String())

	require.Equal(t, "0.0.0.0/0", KeyFromHostBits(mustAddr(t, "10.1.2.3"), 32).String())
	require.Equal(t, "10.1.2.3/32", KeyFromHostBits(mustAddr(t, "10.1.2.3"), 0).String())
}

func TestCommonSupernet(t *testing.T) {
	require.Equal(t, "10.0.0.0/30", CommonSupernet(mustAddrs(t, "10.0.0.1", "10.0.0.2")).String())
	require.Equal(t, "10.0.0.0/23", CommonSupernet(mustAddrs(t, "10.0.1.9", "10.0.0.1")).String())
	require.Equal(t, "10.0.0.7/32", CommonSupernet(mustAddrs(t, "10.0.0.7")).String())
	require.Equal(t, "0.0.0.0/0", CommonSupernet(mustAddrs(t, "1.0.0.1", "200.0.0.1")).String())
}
