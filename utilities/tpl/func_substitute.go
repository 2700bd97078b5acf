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

import "strings"

// Placeholders the template fields populated from the client request
// A missing field substitutes to an empty string, never to the literal placeholder text
var Placeholders = []string{"requestor", "domain", "org", "user", "password", "givenName", "familyName"}

// Substitute replaces every {{placeholder}} with its request value, missing values become empty strings
func Substitute(html string, requestValues map[string]string) string {
	for _, placeholder := range Placeholders {
		html = strings.ReplaceAll(html, "{{"+placeholder+"}}", requestValues[placeholder])
	}
	return html
}
