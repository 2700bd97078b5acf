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

package solution

import "testing"

func TestUnitSituate(t *testing.T) {
	var testCases = []struct {
		name               string
		listenAddress      string
		identityHeader     string
		senderKind         string
		ttlMinutes         int64
		wantListenAddress  string
		wantIdentityHeader string
		wantSenderKind     string
		wantTTLMinutes     int64
	}{
		{
			name:               "allDefaults",
			wantListenAddress:  ":8080",
			wantIdentityHeader: "X-Goog-Authenticated-User-Email",
			wantSenderKind:     "gmail",
			wantTTLMinutes:     60,
		},
		{
			name:               "allProvided",
			listenAddress:      ":9090",
			identityHeader:     "X-Forwarded-Email",
			senderKind:         "smtp",
			ttlMinutes:         15,
			wantListenAddress:  ":9090",
			wantIdentityHeader: "X-Forwarded-Email",
			wantSenderKind:     "smtp",
			wantTTLMinutes:     15,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var settings Settings
			settings.Provisioning.ListenAddress = testCase.listenAddress
			settings.Provisioning.IdentityHeader = testCase.identityHeader
			settings.Provisioning.Sender.Kind = testCase.senderKind
			settings.Provisioning.TemplateCache.TTLMinutes = testCase.ttlMinutes
			settings.Situate()
			if settings.Provisioning.ListenAddress != testCase.wantListenAddress {
				t.Errorf("Want listenAddress %s got %s", testCase.wantListenAddress, settings.Provisioning.ListenAddress)
			}
			if settings.Provisioning.IdentityHeader != testCase.wantIdentityHeader {
				t.Errorf("Want identityHeader %s got %s", testCase.wantIdentityHeader, settings.Provisioning.IdentityHeader)
			}
			if settings.Provisioning.Sender.Kind != testCase.wantSenderKind {
				t.Errorf("Want sender kind %s got %s", testCase.wantSenderKind, settings.Provisioning.Sender.Kind)
			}
			if settings.Provisioning.TemplateCache.TTLMinutes != testCase.wantTTLMinutes {
				t.Errorf("Want ttlMinutes %d got %d", testCase.wantTTLMinutes, settings.Provisioning.TemplateCache.TTLMinutes)
			}
			if settings.Discovery.Sinks.GCS.ObjectPrefix != "discovered-orgs" {
				t.Errorf("Want default gcs objectPrefix discovered-orgs got %s", settings.Discovery.Sinks.GCS.ObjectPrefix)
			}
			if settings.Provisioning.Audit.CollectionID != "provisioningAudit" {
				t.Errorf("Want default audit collectionID provisioningAudit got %s", settings.Provisioning.Audit.CollectionID)
			}
		})
	}
}
