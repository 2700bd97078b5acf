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
	"log"
	"sort"

	"github.com/altostrat/gwa/utilities/glo"
	"github.com/altostrat/gwa/utilities/str"
)

// ancestryFunc lists the organization ancestors of one project, as one delegated subject
type ancestryFunc func(subject string, projectID string) ([]string, error)

// resolveOrgAssociations impersonates each billing user of each retained
// account to read the parent organizations of the account's projects. Users
// outside the delegation domain are skipped, a failing (project, user) pair is
// logged and skipped, one failing lookup never suppresses another's success.
func resolveOrgAssociations(runID string,
	associations []Association,
	domain string,
	listOrgAncestors ancestryFunc) (orgAssociations []OrgAssociation) {
	orgAccounts := make(map[string][]string)
	for _, association := range associations {
		for _, projectID := range association.Projects {
			for _, member := range association.Users {
				subject := str.MemberEmail(member)
				if str.EmailDomain(subject) != domain {
					continue
				}
				organizationIDs, err := listOrgAncestors(subject, projectID)
				if err != nil {
					log.Println(glo.Entry{
						Severity:         "WARNING",
						Message:          "skip_project_user",
						Description:      fmt.Sprintf("listOrgAncestors %v", err),
						RunID:            runID,
						BillingAccountID: association.BillingAccountID,
						ProjectID:        projectID,
						User:             subject,
					})
					continue
				}
				for _, organizationID := range organizationIDs {
					orgAccounts[organizationID] = append(orgAccounts[organizationID], association.BillingAccountID)
				}
			}
		}
	}
	organizationIDs := make([]string, 0, len(orgAccounts))
	for organizationID := range orgAccounts {
		organizationIDs = append(organizationIDs, organizationID)
	}
	sort.Strings(organizationIDs)
	for _, organizationID := range organizationIDs {
		orgAssociations = append(orgAssociations, OrgAssociation{
			OrganizationID:    organizationID,
			BillingAccountIDs: str.UniqueSorted(orgAccounts[organizationID]),
		})
	}
	return orgAssociations
}
