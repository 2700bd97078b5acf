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

// Association one billing account with its billing users, direct and inherited, and the projects it pays for
type Association struct {
	BillingAccountID string   `json:"billingAccountID"`
	Users            []string `json:"users"`
	Projects         []string `json:"projects"`
}

// OrgAssociation one organization with the billing accounts that led to it
type OrgAssociation struct {
	OrganizationID    string   `json:"organizationID"`
	BillingAccountIDs []string `json:"billingAccountIDs"`
}

// Report the outcome of one discovery run
type Report struct {
	RunID           string           `json:"runID"`
	OrganizationID  string           `json:"organizationID"`
	Associations    []Association    `json:"associations"`
	OrgAssociations []OrgAssociation `json:"orgAssociations"`
	OrganizationIDs []string         `json:"organizationIDs"`
	DurationSeconds float64          `json:"durationSeconds"`
}
