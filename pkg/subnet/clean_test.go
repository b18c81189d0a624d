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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean_SingleChain(t *testing.T) {
	cleaned := Clean(Merge(Group(mustAddrs(t, "10.0.0.1", "10.0.0.2"), 2), 2, 16))
	require.Equal(t, []interface{}{"10.0.0.0/30", []string{"10.0.0.1", "10.0.0.2"}}, render(cleaned))
	assertNoSingleEntryBranch(t, cleaned, true)
}

func TestClean_KeepsMostSpecificKey(t *testing.T) {
	addrs := mustAddrs(t, "10.0.0.1", "10.0.0.2", "10.0.1.1", "10.0.1.2")
	cleaned := Clean(Merge(Group(addrs, 2), 2, 16))
	require.Equal(t, []interface{}{
		"10.0.0.0/30", []string{"10.0.0.1", "10.0.0.2"},
		"10.0.1.0/30", []string{"10.0.1.1", "10.0.1.2"},
	}, render(cleaned))
}

func TestClean_NestedBranches(t *testing.T) {
	tree := branch(t,
		"10.0.0.0/16", branch(t,
			"10.0.0.0/17", branch(t,
				"10.0.0.0/24", branch(t,
					"10.0.0.0/30", leaf(t, "10.0.0.1"),
					"10.0.0.4/30", leaf(t, "10.0.0.5"),
				),
			),
		),
		"10.1.0.0/16", branch(t,
			"10.1.0.0/24", leaf(t, "10.1.0.1"),
			"10.1.1.0/24", branch(t,
				"10.1.1.0/30", leaf(t, "10.1.1.1"),
			),
		),
	)
	cleaned := Clean(tree)
	require.Equal(t, []interface{}{
		"10.0.0.0/24", []interface{}{
			"10.0.0.0/30", []string{"10.0.0.1"},
			"10.0.0.4/30", []string{"10.0.0.5"},
		},
		"10.1.0.0/16", []interface{}{
			"10.1.0.0/24", []string{"10.1.0.1"},
			"10.1.1.0/30", []string{"10.1.1.1"},
		},
	}, render(cleaned))
	assertNoSingleEntryBranch(t, cleaned, true)
	require.Equal(t, Strings(Flatten(tree)), Strings(Flatten(cleaned)))

	// input untouched
	require.Equal(t, []Key{mustKey(t, "10.0.0.0/16"), mustKey(t, "10.1.0.0/16")}, tree.Children().Keys())
}

func TestClean_RootCollapse(t *testing.T) {
	tree := branch(t,
		"10.0.0.0/16", branch(t,
			"10.0.0.0/24", leaf(t, "10.0.0.1"),
			"10.0.1.0/24", leaf(t, "10.0.1.1"),
		),
	)
	require.Equal(t, []interface{}{
		"10.0.0.0/24", []string{"10.0.0.1"},
		"10.0.1.0/24", []string{"10.0.1.1"},
	}, render(Clean(tree)))
}

func TestClean_Empty(t *testing.T) {
	cleaned := Clean(NewInternal(nil))
	require.True(t, cleaned.IsInternal())
	require.Equal(t, 0, cleaned.Children().Len())
}

func TestClean_Idempotent(t *testing.T) {
	addrs := mustAddrs(t, "10.0.0.1", "10.0.0.2", "10.0.1.1", "10.0.1.2", "10.3.0.7", "192.168.1.1", "192.168.1.200")
	once := Clean(Merge(Group(addrs, 2), 2, 16))
	require.Equal(t, render(once), render(Clean(once)))
	assertNoSingleEntryBranch(t, once, true)
}
