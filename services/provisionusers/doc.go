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

/*
Package provisionusers lets an authenticated end user self provision a directory account on a customer domain

# Triggered by

HTTP requests from the javascript client, behind an authenticating reverse proxy.

# Routes

- GET /api/getProperties: the requesting user name and the provisionable domains with their organizations.

- GET /api/getUser: given and family names of an existing directory user.

- POST /api/insertUser: create the user, optionally make it super admin, send notification mails.

- POST /api/setPassword: update the user password, send notification mails.

Responses always carry HTTP status 200, the outcome code 200, 204 or 403 travels in the JSON envelope body.

# Authorization

The session user may only manage its own account, or the same account name prefixed with d_. Anything else gets envelope code 403 before any directory mutation.

# Domain Wide Delegation

Yes, twice:

- per customer domain, the configured subject account with the directory user, user security and orgunit scopes.

- on the template domain, the configured template subject with the Drive scope, used to export the mail template documents as HTML.

# Notification mails

Per action (createAccount, setPassword) and recipient (user, admin), a Drive document is exported as HTML, placeholders are substituted, and the result is sent through the configured sender, Gmail API or SMTP. Mail failures are logged and never change the envelope code of a completed mutation.
*/
package provisionusers
