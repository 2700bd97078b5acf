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

// GetUser looks up a directory user by its primary email and returns the given and family names
func GetUser(ctx context.Context, dirAdminService *admin.Service, retryPolicy erm.RetryPolicy, domain string, user string) (givenName string, familyName string, err error) {
	userKey := fmt.Sprintf("%s@%s", user, domain)
	var directoryUser *admin.User
	err = retryPolicy.Do("dirAdminService.Users.Get", func() error {
		directoryUser, err = dirAdminService.Users.Get(userKey).Context(ctx).Do()
		return err
	})
	if err != nil {
		return "", "", fmt.Errorf("dirAdminService.Users.Get %s %v", userKey, err)
	}
	if directoryUser.Name == nil {
		return "", "", fmt.Errorf("directory user %s has no name", userKey)
	}
	return directoryUser.Name.GivenName, directoryUser.Name.FamilyName, nil
}
