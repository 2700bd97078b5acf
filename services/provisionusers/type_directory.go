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

package provisionusers

import (
	"fmt"
	"sync"

	admin "google.golang.org/api/admin/directory/v1"

	"github.com/altostrat/gwa/utilities/aut"
	"github.com/altostrat/gwa/utilities/gsu"
)

// directoryClient narrows the Admin SDK surface used by the handlers
type directoryClient interface {
	GetUser(domain string, user string) (givenName string, familyName string, err error)
	InsertUser(domain string, user string, password string, givenName string, familyName string, orgUnitPath string) error
	SetPassword(domain string, user string, password string) error
	MakeAdmin(domain string, user string) error
}

// directoryScopes per customer domain, the subject account operates users, passwords and org units
var directoryScopes = []string{
	admin.AdminDirectoryUserScope,
	admin.AdminDirectoryUserSecurityScope,
	admin.AdminDirectoryOrgunitScope,
}

// apiDirectory serves directoryClient with one delegated Admin SDK service per customer domain
type apiDirectory struct {
	global *Global
	mu     sync.Mutex
	byDom  map[string]*admin.Service
}

func newAPIDirectory(global *Global) *apiDirectory {
	return &apiDirectory{
		global: global,
		byDom:  make(map[string]*admin.Service),
	}
}

func (directory *apiDirectory) serviceForDomain(domain string) (*admin.Service, error) {
	directory.mu.Lock()
	defer directory.mu.Unlock()
	if dirAdminService, ok := directory.byDom[domain]; ok {
		return dirAdminService, nil
	}
	domainSettings, ok := directory.global.settings.Provisioning.Domains[domain]
	if !ok {
		return nil, fmt.Errorf("no settings for domain %s", domain)
	}
	clientOption, err := aut.GetClientOption(directory.global.ctx,
		directory.global.keyJSONdata,
		domainSettings.SubjectAccount,
		directoryScopes)
	if err != nil {
		return nil, fmt.Errorf("aut.GetClientOption %s %v", domain, err)
	}
	dirAdminService, err := admin.NewService(directory.global.ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("admin.NewService %s %v", domain, err)
	}
	directory.byDom[domain] = dirAdminService
	return dirAdminService, nil
}

func (directory *apiDirectory) GetUser(domain string, user string) (string, string, error) {
	dirAdminService, err := directory.serviceForDomain(domain)
	if err != nil {
		return "", "", err
	}
	return gsu.GetUser(directory.global.ctx, dirAdminService, directory.global.retryPolicy, domain, user)
}

func (directory *apiDirectory) InsertUser(domain string, user string, password string, givenName string, familyName string, orgUnitPath string) error {
	dirAdminService, err := directory.serviceForDomain(domain)
	if err != nil {
		return err
	}
	return gsu.InsertUser(directory.global.ctx, dirAdminService, directory.global.retryPolicy, domain, user, password, givenName, familyName, orgUnitPath)
}

func (directory *apiDirectory) SetPassword(domain string, user string, password string) error {
	dirAdminService, err := directory.serviceForDomain(domain)
	if err != nil {
		return err
	}
	return gsu.SetPassword(directory.global.ctx, dirAdminService, directory.global.retryPolicy, domain, user, password)
}

func (directory *apiDirectory) MakeAdmin(domain string, user string) error {
	dirAdminService, err := directory.serviceForDomain(domain)
	if err != nil {
		return err
	}
	return gsu.MakeAdmin(directory.global.ctx, dirAdminService, directory.global.retryPolicy, domain, user)
}
