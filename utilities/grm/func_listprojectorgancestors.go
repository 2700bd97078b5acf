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

	"google.golang.org/api/cloudresourcemanager/v1"
)

const ancestorTypeOrganization = "organization"

// ListProjectOrgAncestors returns the ids of the ancestors of type organization in the project ancestry chain
func ListProjectOrgAncestors(ctx context.Context, cloudresourcemanagerService *cloudresourcemanager.Service, projectID string) (organizationIDs []string, err error) {
	var getAncestryRequest cloudresourcemanager.GetAncestryRequest
	response, err := cloudresourcemanagerService.Projects.GetAncestry(projectID, &getAncestryRequest).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("cloudresourcemanagerService.Projects.GetAncestry %s %v", projectID, err)
	}
	for _, ancestor := range response.Ancestor {
		if ancestor.ResourceId != nil && ancestor.ResourceId.Type == ancestorTypeOrganization {
			organizationIDs = append(organizationIDs, ancestor.ResourceId.Id)
		}
	}
	return organizationIDs, nil
}
