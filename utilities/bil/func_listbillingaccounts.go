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

	"github.com/altostrat/gwa/utilities/pag"
	"google.golang.org/api/cloudbilling/v1"
)

// ListBillingAccounts returns the resource names of all billing accounts visible to the delegated identity
func ListBillingAccounts(ctx context.Context, cloudbillingService *cloudbilling.APIService) (accountNames []string, err error) {
	return pag.CollectAllPages(func(pageToken string) ([]string, string, error) {
		call := cloudbillingService.BillingAccounts.List().Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		response, err := call.Do()
		if err != nil {
			return nil, "", fmt.Errorf("cloudbillingService.BillingAccounts.List %v", err)
		}
		var pageNames []string
		for _, billingAccount := range response.BillingAccounts {
			pageNames = append(pageNames, billingAccount.Name)
		}
		return pageNames, response.NextPageToken, nil
	})
}
