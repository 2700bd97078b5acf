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

package listbillingorgs

import (
	"fmt"

	"google.golang.org/api/cloudresourcemanager/v1"

	"github.com/altostrat/gwa/utilities/aut"
	"github.com/altostrat/gwa/utilities/grm"
)

// listOrgAncestorsAs reads a project's organization ancestors impersonating one billing user.
// Per subject clients are cached across projects and accounts.
func (global *Global) listOrgAncestorsAs(subject string, projectID string) ([]string, error) {
	crmService, ok := global.crmServicesBySubject[subject]
	if !ok {
		clientOption, err := aut.GetClientOption(global.ctx, global.keyJSONdata, subject, discoveryScopes)
		if err != nil {
			return nil, fmt.Errorf("aut.GetClientOption %s %v", subject, err)
		}
		crmService, err = cloudresourcemanager.NewService(global.ctx, clientOption)
		if err != nil {
			return nil, fmt.Errorf("cloudresourcemanager.NewService %s %v", subject, err)
		}
		global.crmServicesBySubject[subject] = crmService
	}
	return grm.ListProjectOrgAncestors(global.ctx, crmService, projectID)
}
