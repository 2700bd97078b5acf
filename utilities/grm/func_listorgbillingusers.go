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

package grm

import (
	"context"
	"fmt"

	"github.com/altostrat/gwa/utilities/pag"
	"google.golang.org/api/cloudresourcemanager/v1"
)

// BillingUserRole the predefined role granting billing usage on accounts and organizations
const BillingUserRole = "roles/billing.user"

// ListOrgBillingUsers returns the members of every binding holding the billing user role on the organization
// Members of all matching bindings are merged, the API does not guarantee a single binding per role
func ListOrgBillingUsers(ctx context.Context, cloudresourcemanagerService *cloudresourcemanager.Service, organizationID string) (members []string, err error) {
	resource := fmt.Sprintf("organizations/%s", organizationID)
	return pag.CollectAllPages(func(pageToken string) ([]string, string, error) {
		var getRequest cloudresourcemanager.GetIamPolicyRequest
		policy, err := cloudresourcemanagerService.Organizations.GetIamPolicy(resource, &getRequest).Context(ctx).Do()
		if err != nil {
			return nil, "", fmt.Errorf("cloudresourcemanagerService.Organizations.GetIamPolicy %s %v", resource, err)
		}
		var pageMembers []string
		for _, binding := range policy.Bindings {
			if binding.Role == BillingUserRole {
				pageMembers = append(pageMembers, binding.Members...)
			}
		}
		return pageMembers, "", nil
	})
}
