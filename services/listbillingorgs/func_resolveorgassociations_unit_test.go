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
	"bytes"
	"fmt"
	"log"
	"os"
	"reflect"
	"testing"
)

func TestUnitResolveOrgAssociations(t *testing.T) {
	var testCases = []struct {
		name            string
		associations    []Association
		domain          string
		orgsByProject   map[string][]string
		failingProjects map[string]bool
		failingSubjects map[string]bool
		wanted          []OrgAssociation
		wantedSubjects  []string
	}{
		{
			name: "SameOrgThroughTwoProjectsAppearsOnce",
			associations: []Association{
				{
					BillingAccountID: "billingAccounts/A",
					Users:            []string{"user:alice@main.com"},
					Projects:         []string{"prj-1", "prj-2"},
				},
			},
			domain: "main.com",
			orgsByProject: map[string][]string{
				"prj-1": {"1111"},
				"prj-2": {"1111"},
			},
			wanted: []OrgAssociation{
				{OrganizationID: "1111", BillingAccountIDs: []string{"billingAccounts/A"}},
			},
		},
		{
			name: "OneFailingProjectDoesNotSuppressAnotherSuccess",
			associations: []Association{
				{
					BillingAccountID: "billingAccounts/A",
					Users:            []string{"user:alice@main.com"},
					Projects:         []string{"prj-broken", "prj-ok"},
				},
			},
			domain: "main.com",
			orgsByProject: map[string][]string{
				"prj-ok": {"2222"},
			},
			failingProjects: map[string]bool{"prj-broken": true},
			wanted: []OrgAssociation{
				{OrganizationID: "2222", BillingAccountIDs: []string{"billingAccounts/A"}},
			},
		},
		{
			name: "OneFailingUserDoesNotSuppressAnotherOnSameProject",
			associations: []Association{
				{
					BillingAccountID: "billingAccounts/A",
					Users:            []string{"user:carol@main.com", "user:alice@main.com"},
					Projects:         []string{"prj-1"},
				},
			},
			domain: "main.com",
			orgsByProject: map[string][]string{
				"prj-1": {"4444"},
			},
			failingSubjects: map[string]bool{"carol@main.com": true},
			wanted: []OrgAssociation{
				{OrganizationID: "4444", BillingAccountIDs: []string{"billingAccounts/A"}},
			},
			wantedSubjects: []string{"carol@main.com", "alice@main.com"},
		},
		{
			name: "UsersOutsideDelegationDomainSkipped",
			associations: []Association{
				{
					BillingAccountID: "billingAccounts/A",
					Users:            []string{"user:eve@other.com", "user:alice@main.com"},
					Projects:         []string{"prj-1"},
				},
			},
			domain: "main.com",
			orgsByProject: map[string][]string{
				"prj-1": {"1111"},
			},
			wanted: []OrgAssociation{
				{OrganizationID: "1111", BillingAccountIDs: []string{"billingAccounts/A"}},
			},
			wantedSubjects: []string{"alice@main.com"},
		},
		{
			name: "ProvenancePreservedAcrossAccounts",
			associations: []Association{
				{
					BillingAccountID: "billingAccounts/B",
					Users:            []string{"user:bob@main.com"},
					Projects:         []string{"prj-2"},
				},
				{
					BillingAccountID: "billingAccounts/A",
					Users:            []string{"user:alice@main.com"},
					Projects:         []string{"prj-1"},
				},
			},
			domain: "main.com",
			orgsByProject: map[string][]string{
				"prj-1": {"1111", "3333"},
				"prj-2": {"1111"},
			},
			wanted: []OrgAssociation{
				{OrganizationID: "1111", BillingAccountIDs: []string{"billingAccounts/A", "billingAccounts/B"}},
				{OrganizationID: "3333", BillingAccountIDs: []string{"billingAccounts/A"}},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buffer bytes.Buffer
			log.SetOutput(&buffer)
			defer func() {
				log.SetOutput(os.Stderr)
			}()
			var subjects []string
			listOrgAncestors := func(subject string, projectID string) ([]string, error) {
				subjects = append(subjects, subject)
				if tc.failingProjects[projectID] || tc.failingSubjects[subject] {
					return nil, fmt.Errorf("fabricated getAncestry error")
				}
				return tc.orgsByProject[projectID], nil
			}
			orgAssociations := resolveOrgAssociations("test-run", tc.associations, tc.domain, listOrgAncestors)
			if !reflect.DeepEqual(orgAssociations, tc.wanted) {
				t.Errorf("Want %v got %v", tc.wanted, orgAssociations)
			}
			if tc.wantedSubjects != nil && !reflect.DeepEqual(subjects, tc.wantedSubjects) {
				t.Errorf("Want impersonated subjects %v got %v", tc.wantedSubjects, subjects)
			}
		})
	}
}
