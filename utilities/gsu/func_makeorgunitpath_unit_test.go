// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gsu

import (
	"testing"
)

func TestUnitMakeOrgUnitPath(t *testing.T) {
	var testCases = []struct {
		name          string
		orgPathPrefix string
		org           string
		wanted        string
	}{
		{
			name:          "NoPrefixUndefinedOrg",
			orgPathPrefix: "",
			org:           "undefined",
			wanted:        "/",
		},
		{
			name:          "PrefixAndOrg",
			orgPathPrefix: "Acme",
			org:           "Sales",
			wanted:        "/Acme/Sales",
		},
		{
			name:          "PrefixUndefinedOrg",
			orgPathPrefix: "Acme",
			org:           "undefined",
			wanted:        "/Acme/",
		},
		{
			name:          "NoPrefixWithOrg",
			orgPathPrefix: "",
			org:           "Sales",
			wanted:        "/Sales",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := MakeOrgUnitPath(tc.orgPathPrefix, tc.org)
			if result != tc.wanted {
				t.Errorf("MakeOrgUnitPath(%q, %q) got %q want %q", tc.orgPathPrefix, tc.org, result, tc.wanted)
			}
		})
	}
}
