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

package str

import "strings"

// MemberEmail strips the IAM member kind prefix, like user: or serviceAccount:
func MemberEmail(member string) string {
	i := strings.LastIndex(member, ":")
	if i == -1 {
		return member
	}
	return member[i+1:]
}
