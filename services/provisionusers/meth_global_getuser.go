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
	"fmt"
	"log"
	"net/http"

	"github.com/altostrat/gwa/utilities/glo"
)

type userPayload struct {
	Domain     string `json:"domain"`
	User       string `json:"user"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

func (global *Global) getUser(w http.ResponseWriter, r *http.Request) {
	domain := r.FormValue("domain")
	user := r.FormValue("user")
	givenName, familyName, err := global.directory.GetUser(domain, user)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: microserviceName,
			Severity:         "INFO",
			Message:          "get_user_failed",
			Description:      fmt.Sprintf("directory.GetUser %v", err),
			Domain:           domain,
			User:             user,
		})
		writeEnvelope(w, Envelope{Code: 204, Msg: fmt.Sprintf("User %s not found on domain %s", user, domain)})
		return
	}
	writeEnvelope(w, Envelope{Code: 200, Payload: userPayload{
		Domain:     domain,
		User:       user,
		GivenName:  givenName,
		FamilyName: familyName,
	}})
}
