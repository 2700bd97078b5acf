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

// Situate complements settings with default values
func (settings *Settings) Situate() {
	if settings.Discovery.Sinks.GCS.ObjectPrefix == "" {
		settings.Discovery.Sinks.GCS.ObjectPrefix = "discovered-orgs"
	}
	if settings.Provisioning.ListenAddress == "" {
		settings.Provisioning.ListenAddress = ":8080"
	}
	if settings.Provisioning.IdentityHeader == "" {
		settings.Provisioning.IdentityHeader = "X-Goog-Authenticated-User-Email"
	}
	if settings.Provisioning.Sender.Kind == "" {
		settings.Provisioning.Sender.Kind = "gmail"
	}
	if settings.Provisioning.TemplateCache.TTLMinutes == 0 {
		settings.Provisioning.TemplateCache.TTLMinutes = 60
	}
	if settings.Provisioning.Audit.CollectionID == "" {
		settings.Provisioning.Audit.CollectionID = "provisioningAudit"
	}
}
