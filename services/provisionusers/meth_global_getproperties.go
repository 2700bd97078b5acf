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
	"net/http"
	"sort"
)

type domainProperties struct {
	Domain string   `json:"domain"`
	Orgs   []string `json:"orgs"`
}

type propertiesPayload struct {
	UserName string             `json:"userName"`
	Domains  []domainProperties `json:"domains"`
}

func (global *Global) getProperties(w http.ResponseWriter, r *http.Request) {
	if len(global.settings.Provisioning.Domains) == 0 {
		writeEnvelope(w, Envelope{Code: 204, Msg: "No properties"})
		return
	}
	sessionUser := sessionUserName(r, global.settings.Provisioning.IdentityHeader)
	if sessionUser == "" {
		writeEnvelope(w, Envelope{Code: 204, Msg: "No user session"})
		return
	}
	domainNames := make([]string, 0, len(global.settings.Provisioning.Domains))
	for domainName := range global.settings.Provisioning.Domains {
		domainNames = append(domainNames, domainName)
	}
	sort.Strings(domainNames)
	domains := make([]domainProperties, 0, len(domainNames))
	for _, domainName := range domainNames {
		domains = append(domains, domainProperties{
			Domain: domainName,
			Orgs:   global.settings.Provisioning.Domains[domainName].Orgs,
		})
	}
	writeEnvelope(w, Envelope{Code: 200, Payload: propertiesPayload{
		UserName: sessionUser,
		Domains:  domains,
	}})
}
