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

package gsu

import (
	"context"
	"fmt"

	"github.com/altostrat/gwa/utilities/erm"
	admin "google.golang.org/api/admin/directory/v1"
)

// InsertUser provisions a directory user, not suspended, placed in the given organization unit path
func InsertUser(ctx context.Context, dirAdminService *admin.Service, retryPolicy erm.RetryPolicy, domain string, user string, password string, givenName string, familyName string, orgUnitPath string) (err error) {
	directoryUser := admin.User{
		PrimaryEmail: fmt.Sprintf("%s@%s", user, domain),
		Name: &admin.UserName{
			GivenName:  givenName,
			FamilyName: familyName,
		},
		Password:    password,
		OrgUnitPath: orgUnitPath,
		Suspended:   false,
	}
	err = retryPolicy.Do("dirAdminService.Users.Insert", func() error {
		_, err := dirAdminService.Users.Insert(&directoryUser).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("dirAdminService.Users.Insert %s %v", directoryUser.PrimaryEmail, err)
	}
	return nil
}
