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

package provisionusers

import (
	"net/http/httptest"
	"testing"
)

const testIdentityHeader = "X-Goog-Authenticated-User-Email"

func TestUnitSessionUserName(t *testing.T) {
	var testCases = []struct {
		name   string
		value  string
		wanted string
	}{
		{
			name:   "NoHeader",
			value:  "",
			wanted: "",
		},
		{
			name:   "PlainEmail",
			value:  "alice@example.com",
			wanted: "alice",
		},
		{
			name:   "IAPPrefixedEmail",
			value:  "accounts.google.com:alice@example.com",
			wanted: "alice",
		},
		{
			name:   "BareAccountName",
			value:  "alice",
			wanted: "alice",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/api/getProperties", nil)
			if tc.value != "" {
				r.Header.Set(testIdentityHeader, tc.value)
			}
			result := sessionUserName(r, testIdentityHeader)
			if result != tc.wanted {
				t.Errorf("sessionUserName(%s) got %s want %s", tc.value, result, tc.wanted)
			}
		})
	}
}

func TestUnitAuthorizedRequest(t *testing.T) {
	var testCases = []struct {
		name        string
		sessionUser string
		requestUser string
		shouldPass  bool
	}{
		{
			name:        "OwnAccount",
			sessionUser: "alice",
			requestUser: "alice",
			shouldPass:  true,
		},
		{
			name:        "OwnPrefixedAccount",
			sessionUser: "alice",
			requestUser: "d_alice",
			shouldPass:  true,
		},
		{
			name:        "SomeoneElsesAccount",
			sessionUser: "alice",
			requestUser: "bob",
			shouldPass:  false,
		},
		{
			name:        "PrefixOfSomeoneElse",
			sessionUser: "alice",
			requestUser: "d_bob",
			shouldPass:  false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := authorizedRequest(tc.sessionUser, tc.requestUser)
			if result != tc.shouldPass {
				t.Errorf("authorizedRequest(%s, %s) got %v want %v", tc.sessionUser, tc.requestUser, result, tc.shouldPass)
			}
		})
	}
}
