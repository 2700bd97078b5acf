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

	"github.com/altostrat/gwa/utilities/glo"
)

// accountUsersFunc lists the members directly granted the billing user role on one billing account
type accountUsersFunc func(accountName string) ([]string, error)

// accountProjectsFunc lists the projects paid by one billing account
type accountProjectsFunc func(accountName string) ([]string, error)

// buildAssociations retains the billing accounts having at least one direct
// billing user and at least one project, then merges the inherited org level
// billing users. A billing account that cannot be read is logged and skipped.
func buildAssociations(runID string,
	accountNames []string,
	inheritedUsers []string,
	listUsers accountUsersFunc,
	listProjects accountProjectsFunc) (associations []Association) {
	for _, accountName := range accountNames {
		users, err := listUsers(accountName)
		if err != nil {
			log.Println(glo.Entry{
				Severity:         "WARNING",
				Message:          "skip_billing_account",
				Description:      fmt.Sprintf("listUsers %v", err),
				RunID:            runID,
				BillingAccountID: accountName,
			})
			continue
		}
		if len(users) == 0 {
			continue
		}
		projects, err := listProjects(accountName)
		if err != nil {
			log.Println(glo.Entry{
				Severity:         "WARNING",
				Message:          "skip_billing_account",
				Description:      fmt.Sprintf("listProjects %v", err),
				RunID:            runID,
				BillingAccountID: accountName,
			})
			continue
		}
		if len(projects) == 0 {
			continue
		}
		users = append(users, inheritedUsers...)
		associations = append(associations, Association{
			BillingAccountID: accountName,
			Users:            users,
			Projects:         projects,
		})
	}
	return associations
}
