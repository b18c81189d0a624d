/*
 * Copyright (C) 2022 IBM, Inc.
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

package write

import (
	"github.com/netobserv/subnet-finder/pkg/pipeline/encode"
	log "github.com/sirupsen/logrus"
)

type WriteFake struct {
	Reports []*encode.Report
	Err     error
}

// Write stores in memory all reports.
func (w *WriteFake) Write(report *encode.Report) error {
	log.Debugf("entering writeFake Write")
	if w.Err != nil {
		return w.Err
	}
	w.Reports = append(w.Reports, report)
	return nil
}

// NewWriteFake creates a new write.
func NewWriteFake() *WriteFake {
	log.Debugf("entering NewWriteFake")
	return &WriteFake{}
}
