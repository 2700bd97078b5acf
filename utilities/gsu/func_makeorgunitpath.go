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

package gsu

// UndefinedOrg sentinel sent by the client UI when no organization unit was picked
const UndefinedOrg = "undefined"

// MakeOrgUnitPath builds the organization unit path from the domain prefix and the requested org
// An undefined org places the user at the root of the prefix
func MakeOrgUnitPath(orgPathPrefix string, org string) string {
	prefix := ""
	if orgPathPrefix != "" {
		prefix = "/" + orgPathPrefix
	}
	if org == UndefinedOrg {
		return prefix + "/"
	}
	return prefix + "/" + org
}
