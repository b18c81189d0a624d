/*
 * Copyright (C) 2023 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *	 http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package ingest

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/netip"

	"github.com/netobserv/subnet-finder/pkg/api"
	"github.com/netobserv/subnet-finder/pkg/subnet"
	log "github.com/sirupsen/logrus"
)

type IngestSynthetic struct {
	params api.IngestSynthetic
}

const (
	defaultCount = 100
	defaultSeed  = 1
)

// Ingest generates Count distinct host addresses inside each configured network.
// Network and broadcast addresses are never generated, except for /31 and /32 networks.
func (ingestS *IngestSynthetic) Ingest(_ context.Context) ([]string, error) {
	log.Debugf("entering IngestSynthetic Ingest, params = %v", ingestS.params)
	rnd := rand.New(rand.NewSource(ingestS.params.Seed))
	var lines []string
	for _, cidr := range ingestS.params.CIDRs {
		prefix, err := netip.ParsePrefix(cidr)
		if err != nil || !prefix.Addr().Is4() {
			return nil, fmt.Errorf("invalid synthetic cidr %q", cidr)
		}
		prefix = prefix.Masked()
		network, _ := subnet.AddressFromAddr(prefix.Addr())
		size := uint64(1) << (32 - prefix.Bits())
		first, last := uint64(network), uint64(network)+size-1
		if size >= 4 {
			first++
			last--
		}
		hosts := last - first + 1
		if uint64(ingestS.params.Count) >= hosts {
			for a := first; a <= last; a++ {
				lines = append(lines, subnet.Address(a).String())
			}
			continue
		}
		seen := make(map[uint64]struct{}, ingestS.params.Count)
		for len(seen) < ingestS.params.Count {
			a := first + uint64(rnd.Int63n(int64(hosts)))
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			lines = append(lines, subnet.Address(a).String())
		}
	}
	recordsIngested.WithLabelValues(api.IngestTypeName("Synthetic")).Add(float64(len(lines)))
	return lines, nil
}

// NewIngestSynthetic create a new ingester
func NewIngestSynthetic(params *api.IngestSynthetic) (Ingester, error) {
	log.Debugf("entering NewIngestSynthetic")
	if params == nil {
		return nil, errors.New("missing synthetic ingest configuration")
	}
	jsonIngestSynthetic := *params
	if jsonIngestSynthetic.Count < 0 {
		return nil, fmt.Errorf("invalid synthetic count %d", jsonIngestSynthetic.Count)
	}
	if jsonIngestSynthetic.Count == 0 {
		jsonIngestSynthetic.Count = defaultCount
	}
	if jsonIngestSynthetic.Seed == 0 {
		jsonIngestSynthetic.Seed = defaultSeed
	}
	log.Debugf("params = %v", jsonIngestSynthetic)

	return &IngestSynthetic{
		params: jsonIngestSynthetic,
	}, nil
}
