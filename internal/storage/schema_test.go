/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"encoding/json"
	"testing"
)

func TestValidateManifestAcceptsSavedDocument(t *testing.T) {
	c, b := buildProjectFixture(t)
	data, err := json.Marshal(ToDocument(c, b))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := ValidateManifest(data); err != nil {
		t.Fatalf("ValidateManifest rejected a saved document: %v", err)
	}
}

func TestValidateManifestRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{ not json`},
		{"missing name", `{"formatVersion":1,"signals":[]}`},
		{"bad uuid", `{"formatVersion":1,"name":"b","signals":[{"id":"nope","name":"GND"}]}`},
		{"zero width line", `{"formatVersion":1,"name":"b","signals":[],"segments":[{` +
			`"id":"c2a5b4a2-0000-4000-8000-000000000001","signal":"c2a5b4a2-0000-4000-8000-000000000002",` +
			`"lines":[{"id":"c2a5b4a2-0000-4000-8000-000000000003","start":"c2a5b4a2-0000-4000-8000-000000000004",` +
			`"end":"c2a5b4a2-0000-4000-8000-000000000005","width":0}]}]}`},
		{"unknown field", `{"formatVersion":1,"name":"b","signals":[],"color":"red"}`},
	}
	for _, tc := range cases {
		if err := ValidateManifest([]byte(tc.data)); err == nil {
			t.Fatalf("%s: validation passed", tc.name)
		}
	}
}
