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

package tpl

import (
	"fmt"
	"strings"
)

// Actions and recipients selecting a mail template
const (
	ActionCreateAccount = "createAccount"
	ActionSetPassword   = "setPassword"
	RecipientUser       = "user"
	RecipientAdmin      = "admin"
)

const undefinedOrg = "undefined"

// ConditionalMessages returns the intro, admin and org message fragments for an action, recipient and domain settings
// Fragments that do not apply are empty strings so the substitution never leaves placeholder text behind
func ConditionalMessages(action string, recipient string, createAsAdmin bool, org string) (introMsg string, adminMsg string, orgMsg string) {
	if action != ActionCreateAccount {
		return "", "", ""
	}
	if recipient == RecipientUser {
		introMsg = "For more information on how to log into the domain, please contact your administrator"
	}
	if createAsAdmin {
		if recipient == RecipientUser {
			adminMsg = "Your account was given super admin privileges.... PLEASE USE WITH CAUTION!"
		} else {
			adminMsg = "The account was given super admin privileges."
		}
	}
	if org != undefinedOrg && org != "" {
		orgMsg = fmt.Sprintf("The account was placed in the %s organization in the domain.", org)
	}
	return introMsg, adminMsg, orgMsg
}

// ApplyConditionalMessages substitutes the conditional fragments into the template
func ApplyConditionalMessages(html string, action string, recipient string, createAsAdmin bool, org string) string {
	introMsg, adminMsg, orgMsg := ConditionalMessages(action, recipient, createAsAdmin, org)
	html = strings.ReplaceAll(html, "{{introMsg}}", introMsg)
	html = strings.ReplaceAll(html, "{{adminMsg}}", adminMsg)
	html = strings.ReplaceAll(html, "{{orgMsg}}", orgMsg)
	return html
}
