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
	"strings"
)

// sessionUserName extracts the account name of the authenticated user from the
// trusted reverse proxy header. IAP style values like
// accounts.google.com:alice@example.com reduce to alice. Empty when no session.
func sessionUserName(r *http.Request, identityHeader string) string {
	identity := r.Header.Get(identityHeader)
	if identity == "" {
		return ""
	}
	if i := strings.LastIndex(identity, ":"); i != -1 {
		identity = identity[i+1:]
	}
	if i := strings.Index(identity, "@"); i != -1 {
		identity = identity[:i]
	}
	return identity
}

// authorizedRequest a session user may only manage its own account, or the
// same account name prefixed with d_
func authorizedRequest(sessionUser string, requestUser string) bool {
	return sessionUser == requestUser || "d_"+sessionUser == requestUser
}
