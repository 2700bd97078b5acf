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

package bil

import (
	"context"
	"fmt"

	"github.com/altostrat/gwa/utilities/grm"
	"github.com/altostrat/gwa/utilities/pag"
	"google.golang.org/api/cloudbilling/v1"
)

// ListAccountBillingUsers returns the members directly granted the billing user role on the billing account
// Members of all matching bindings are merged
func ListAccountBillingUsers(ctx context.Context, cloudbillingService *cloudbilling.APIService, accountName string) (members []string, err error) {
	return pag.CollectAllPages(func(pageToken string) ([]string, string, error) {
		policy, err := cloudbillingService.BillingAccounts.GetIamPolicy(accountName).Context(ctx).Do()
		if err != nil {
			return nil, "", fmt.Errorf("cloudbillingService.BillingAccounts.GetIamPolicy %s %v", accountName, err)
		}
		var pageMembers []string
		for _, binding := range policy.Bindings {
			if binding.Role == grm.BillingUserRole {
				pageMembers = append(pageMembers, binding.Members...)
			}
		}
		return pageMembers, "", nil
	})
}
