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
	"github.com/altostrat/gwa/utilities/solution"
	"github.com/altostrat/gwa/utilities/tpl"
)

// requestValues collects the template placeholder values from the request
func requestValues(r *http.Request) map[string]string {
	values := make(map[string]string, len(tpl.Placeholders))
	for _, placeholder := range tpl.Placeholders {
		values[placeholder] = r.FormValue(placeholder)
	}
	return values
}

func (global *Global) templateID(action string, recipient string) string {
	var pair solution.TemplatePair
	switch action {
	case tpl.ActionSetPassword:
		pair = global.settings.Provisioning.EmailTemplates.SetPassword
	default:
		pair = global.settings.Provisioning.EmailTemplates.CreateAccount
	}
	if recipient == tpl.RecipientAdmin {
		return pair.Admin
	}
	return pair.User
}

// sendNotifications mails the requestor and the domain's notify address.
// Failures are logged, they never change the outcome of the completed mutation.
func (global *Global) sendNotifications(action string, subject string, values map[string]string, domainSettings solution.DomainSettings) {
	createAsAdmin := domainSettings.CreateAsAdmin == "true"
	targets := []struct {
		recipient string
		to        string
	}{
		{tpl.RecipientUser, fmt.Sprintf("%s@%s", values["requestor"], values["domain"])},
		{tpl.RecipientAdmin, domainSettings.NotifyEmail},
	}
	for _, target := range targets {
		templateHTML, err := global.fetchTemplate(global.templateID(action, target.recipient))
		if err != nil {
			log.Println(glo.Entry{
				MicroserviceName: microserviceName,
				Severity:         "WARNING",
				Message:          "fetch_template_failed",
				Description:      fmt.Sprintf("%s %s %v", action, target.recipient, err),
				Domain:           values["domain"],
				User:             values["user"],
			})
			continue
		}
		body := tpl.BuildBody(templateHTML, values, action, target.recipient, createAsAdmin)
		err = global.sender.Send(target.to, subject, body)
		if err != nil {
			log.Println(glo.Entry{
				MicroserviceName: microserviceName,
				Severity:         "WARNING",
				Message:          "send_mail_failed",
				Description:      fmt.Sprintf("%s to %s %v", action, target.to, err),
				Domain:           values["domain"],
				User:             values["user"],
			})
		}
	}
}
