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

	"github.com/go-chi/chi/v5/middleware"

	"github.com/altostrat/gwa/utilities/glo"
	"github.com/altostrat/gwa/utilities/tpl"
)

func (global *Global) setPassword(w http.ResponseWriter, r *http.Request) {
	sessionUser := sessionUserName(r, global.settings.Provisioning.IdentityHeader)
	if sessionUser == "" {
		writeEnvelope(w, Envelope{Code: 204, Msg: "No user session"})
		return
	}
	domain := r.FormValue("domain")
	user := r.FormValue("user")
	if !authorizedRequest(sessionUser, user) {
		writeEnvelope(w, Envelope{Code: 403, Msg: fmt.Sprintf("User %s is not authorized to manage the requested account: %s", sessionUser, user)})
		return
	}
	domainSettings, ok := global.settings.Provisioning.Domains[domain]
	if !ok {
		writeEnvelope(w, Envelope{Code: 204, Msg: fmt.Sprintf("Password could not be set %s", domain)})
		return
	}
	err := global.directory.SetPassword(domain, user, r.FormValue("password"))
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: microserviceName,
			Severity:         "WARNING",
			Message:          "set_password_failed",
			Description:      fmt.Sprintf("directory.SetPassword %v", err),
			RequestID:        middleware.GetReqID(r.Context()),
			Domain:           domain,
			User:             user,
		})
		writeEnvelope(w, Envelope{Code: 204, Msg: fmt.Sprintf("Password could not be set %s", domain)})
		return
	}
	global.recordAudit("setPassword", domain, user, r.FormValue("requestor"), middleware.GetReqID(r.Context()))

	values := requestValues(r)
	subject := fmt.Sprintf("Password for account %s on %s was changed", user, domain)
	global.sendNotifications(tpl.ActionSetPassword, subject, values, domainSettings)
	writeEnvelope(w, Envelope{Code: 200, Msg: fmt.Sprintf("Password set successfully %s", domain)})
}
