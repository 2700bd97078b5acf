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

package solution

// SettingsFileName find settings file in the launch folder
const SettingsFileName = "settings.yaml"

// DomainSettings how to provision accounts for one email domain
type DomainSettings struct {
	SubjectAccount string   `yaml:"subjectAccount"`
	OrgPathPrefix  string   `yaml:"orgPathPrefix"`
	NotifyEmail    string   `yaml:"notifyEmail"`
	CreateAsAdmin  string   `yaml:"createAsAdmin"`
	Orgs           []string `yaml:"orgs"`
}

// TemplatePair Drive document IDs for the user facing and admin facing versions of one mail
type TemplatePair struct {
	User  string `yaml:"user" valid:"isNotZeroValue"`
	Admin string `yaml:"admin" valid:"isNotZeroValue"`
}

// Settings settings common to all services
type Settings struct {
	Discovery struct {
		OrganizationID   string `yaml:"organizationID" valid:"isNotZeroValue"`
		Domain           string `yaml:"domain" valid:"isNotZeroValue"`
		DelegatedSubject string `yaml:"delegatedSubject" valid:"isEmail"`
		KeyJSONFilePath  string `yaml:"keyJSONFilePath" valid:"isNotZeroValue"`
		Sinks            struct {
			Pubsub struct {
				Enabled   bool   `yaml:"enabled"`
				ProjectID string `yaml:"projectID"`
				TopicName string `yaml:"topicName"`
			} `yaml:"pubsub"`
			GCS struct {
				Enabled      bool   `yaml:"enabled"`
				BucketName   string `yaml:"bucketName"`
				ObjectPrefix string `yaml:"objectPrefix"`
			} `yaml:"gcs"`
		} `yaml:"sinks"`
	} `yaml:"discovery"`
	Provisioning struct {
		ListenAddress   string `yaml:"listenAddress"`
		IdentityHeader  string `yaml:"identityHeader"`
		KeyJSONFilePath string `yaml:"keyJSONFilePath" valid:"isNotZeroValue"`
		TemplateSubject string `yaml:"templateSubject" valid:"isEmail"`
		Sender          struct {
			Kind string `yaml:"kind" valid:"isSenderKind"`
			From string `yaml:"from" valid:"isEmail"`
			SMTP struct {
				Host     string `yaml:"host"`
				Port     int    `yaml:"port"`
				Username string `yaml:"username"`
				Password string `yaml:"password"`
			} `yaml:"smtp"`
		} `yaml:"sender"`
		TemplateCache struct {
			Enabled    bool  `yaml:"enabled"`
			TTLMinutes int64 `yaml:"ttlMinutes"`
		} `yaml:"templateCache"`
		Audit struct {
			Enabled      bool   `yaml:"enabled"`
			ProjectID    string `yaml:"projectID"`
			CollectionID string `yaml:"collectionID"`
		} `yaml:"audit"`
		Domains        map[string]DomainSettings `yaml:"domains" valid:"isNotZeroValue"`
		EmailTemplates struct {
			CreateAccount TemplatePair `yaml:"createAccount"`
			SetPassword   TemplatePair `yaml:"setPassword"`
		} `yaml:"emailTemplates"`
	} `yaml:"provisioning"`
}
