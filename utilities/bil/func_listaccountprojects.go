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

// ListAccountProjects returns the project ids billed to the billing account
func ListAccountProjects(ctx context.Context, cloudbillingService *cloudbilling.APIService, accountName string) (projectIDs []string, err error) {
	return pag.CollectAllPages(func(pageToken string) ([]string, string, error) {
		call := cloudbillingService.BillingAccounts.Projects.List(accountName).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		response, err := call.Do()
		if err != nil {
			return nil, "", fmt.Errorf("cloudbillingService.BillingAccounts.Projects.List %s %v", accountName, err)
		}
		var pageProjectIDs []string
		for _, projectBillingInfo := range response.ProjectBillingInfo {
			pageProjectIDs = append(pageProjectIDs, projectBillingInfo.ProjectId)
		}
		return pageProjectIDs, response.NextPageToken, nil
	})
}
