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
	"github.com/altostrat/gwa/utilities/gsu"
	"github.com/altostrat/gwa/utilities/str"
	"github.com/altostrat/gwa/utilities/tpl"
)

func (global *Global) insertUser(w http.ResponseWriter, r *http.Request) {
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
		writeEnvelope(w, Envelope{Code: 204, Msg: fmt.Sprintf("User %s could not be added to domain %s", user, domain)})
		return
	}
	org := r.FormValue("org")
	if org == "" {
		org = gsu.UndefinedOrg
	}
	if org != gsu.UndefinedOrg && !str.Find(domainSettings.Orgs, org) {
		writeEnvelope(w, Envelope{Code: 204, Msg: fmt.Sprintf("Organization %s is not available on domain %s", org, domain)})
		return
	}
	orgUnitPath := gsu.MakeOrgUnitPath(domainSettings.OrgPathPrefix, org)

	err := global.directory.InsertUser(domain,
		user,
		r.FormValue("password"),
		r.FormValue("givenName"),
		r.FormValue("familyName"),
		orgUnitPath)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: microserviceName,
			Severity:         "WARNING",
			Message:          "insert_user_failed",
			Description:      fmt.Sprintf("directory.InsertUser %v", err),
			RequestID:        middleware.GetReqID(r.Context()),
			Domain:           domain,
			User:             user,
		})
		writeEnvelope(w, Envelope{Code: 204, Msg: fmt.Sprintf("User %s could not be added to domain %s", user, domain)})
		return
	}
	global.recordAudit("insertUser", domain, user, r.FormValue("requestor"), middleware.GetReqID(r.Context()))

	envelope := Envelope{Code: 200, Msg: fmt.Sprintf("User %s successfully added to domain %s", user, domain)}
	if domainSettings.CreateAsAdmin == "true" {
		err = global.directory.MakeAdmin(domain, user)
		if err != nil {
			log.Println(glo.Entry{
				MicroserviceName: microserviceName,
				Severity:         "WARNING",
				Message:          "make_admin_failed",
				Description:      fmt.Sprintf("directory.MakeAdmin %v", err),
				RequestID:        middleware.GetReqID(r.Context()),
				Domain:           domain,
				User:             user,
			})
			writeEnvelope(w, Envelope{Code: 204, Msg: fmt.Sprintf("User %s successfully added to %s but couldn't be made Admin", user, domain)})
			return
		}
		global.recordAudit("makeAdmin", domain, user, r.FormValue("requestor"), middleware.GetReqID(r.Context()))
		envelope.Msg = fmt.Sprintf("User %s successfully added to domain %s and made Admin", user, domain)
	}

	values := requestValues(r)
	values["org"] = org
	subject := fmt.Sprintf("Account %s on %s was created", user, domain)
	global.sendNotifications(tpl.ActionCreateAccount, subject, values, domainSettings)
	writeEnvelope(w, envelope)
}
