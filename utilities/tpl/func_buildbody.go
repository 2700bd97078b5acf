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

import "fmt"

// BuildBody substitutes all placeholders and wraps the result in a minimal HTML envelope
func BuildBody(templateHTML string, requestValues map[string]string, action string, recipient string, createAsAdmin bool) string {
	body := Substitute(templateHTML, requestValues)
	body = ApplyConditionalMessages(body, action, recipient, createAsAdmin, requestValues["org"])
	return fmt.Sprintf("<html><head></head><body>%s</body></html>", body)
}
