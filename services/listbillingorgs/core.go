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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	cloudbilling "google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"

	"github.com/altostrat/gwa/utilities/aut"
	"github.com/altostrat/gwa/utilities/bil"
	"github.com/altostrat/gwa/utilities/gcs"
	"github.com/altostrat/gwa/utilities/glo"
	"github.com/altostrat/gwa/utilities/gps"
	"github.com/altostrat/gwa/utilities/grm"
	"github.com/altostrat/gwa/utilities/solution"
	"github.com/altostrat/gwa/utilities/validater"
)

const microserviceName = "listbillingorgs"

// discoveryScopes the delegated subject, and the impersonated billing users, only read
var discoveryScopes = []string{
	"https://www.googleapis.com/auth/cloudplatformorganizations.readonly",
	"https://www.googleapis.com/auth/cloud-billing.readonly",
	"https://www.googleapis.com/auth/cloudplatformprojects.readonly",
}

// Global structure for global variables
type Global struct {
	ctx                         context.Context
	settings                    solution.Settings
	keyJSONdata                 []byte
	cloudresourcemanagerService *cloudresourcemanager.Service
	cloudbillingService         *cloudbilling.APIService
	crmServicesBySubject        map[string]*cloudresourcemanager.Service
	pubsubClient                *pubsub.Client
	topic                       *pubsub.Topic
	bucketHandle                *storage.BucketHandle
	runID                       string
}

// Initialize builds the delegated API clients and the optional sinks
func Initialize(ctx context.Context, global *Global, settings solution.Settings) (err error) {
	global.ctx = ctx
	global.settings = settings
	global.runID = fmt.Sprintf("%v", uuid.New())
	global.crmServicesBySubject = make(map[string]*cloudresourcemanager.Service)

	err = validater.ValidateStruct(settings.Discovery, "settings/discovery")
	if err != nil {
		return err
	}
	global.keyJSONdata, err = aut.ReadKeyFile(settings.Discovery.KeyJSONFilePath)
	if err != nil {
		return err
	}
	var clientOption option.ClientOption
	clientOption, err = aut.GetClientOption(ctx, global.keyJSONdata, settings.Discovery.DelegatedSubject, discoveryScopes)
	if err != nil {
		return err
	}
	global.cloudresourcemanagerService, err = cloudresourcemanager.NewService(ctx, clientOption)
	if err != nil {
		return fmt.Errorf("cloudresourcemanager.NewService %v", err)
	}
	global.cloudbillingService, err = cloudbilling.NewService(ctx, clientOption)
	if err != nil {
		return fmt.Errorf("cloudbilling.NewService %v", err)
	}

	if settings.Discovery.Sinks.Pubsub.Enabled {
		global.pubsubClient, err = pubsub.NewClient(ctx, settings.Discovery.Sinks.Pubsub.ProjectID)
		if err != nil {
			return fmt.Errorf("pubsub.NewClient %v", err)
		}
		global.topic = global.pubsubClient.Topic(settings.Discovery.Sinks.Pubsub.TopicName)
	}
	if settings.Discovery.Sinks.GCS.Enabled {
		var storageClient *storage.Client
		storageClient, err = storage.NewClient(ctx)
		if err != nil {
			return fmt.Errorf("storage.NewClient %v", err)
		}
		global.bucketHandle = storageClient.Bucket(settings.Discovery.Sinks.GCS.BucketName)
	}
	return nil
}

// Run walks the three discovery stages and writes the report to stdout and the configured sinks
func Run(global *Global) (err error) {
	start := time.Now()
	organizationID := global.settings.Discovery.OrganizationID
	log.Println(glo.Entry{
		MicroserviceName: microserviceName,
		Severity:         "NOTICE",
		Message:          "run_start",
		RunID:            global.runID,
		OrganizationID:   organizationID,
	})

	inheritedUsers, err := grm.ListOrgBillingUsers(global.ctx, global.cloudresourcemanagerService, organizationID)
	if err != nil {
		return fmt.Errorf("grm.ListOrgBillingUsers %v", err)
	}
	accountNames, err := bil.ListBillingAccounts(global.ctx, global.cloudbillingService)
	if err != nil {
		return fmt.Errorf("bil.ListBillingAccounts %v", err)
	}

	associations := buildAssociations(global.runID, accountNames, inheritedUsers,
		func(accountName string) ([]string, error) {
			return bil.ListAccountBillingUsers(global.ctx, global.cloudbillingService, accountName)
		},
		func(accountName string) ([]string, error) {
			return bil.ListAccountProjects(global.ctx, global.cloudbillingService, accountName)
		})

	orgAssociations := resolveOrgAssociations(global.runID, associations, global.settings.Discovery.Domain, global.listOrgAncestorsAs)

	organizationIDs := make([]string, 0, len(orgAssociations))
	for _, orgAssociation := range orgAssociations {
		organizationIDs = append(organizationIDs, orgAssociation.OrganizationID)
	}
	report := Report{
		RunID:           global.runID,
		OrganizationID:  organizationID,
		Associations:    associations,
		OrgAssociations: orgAssociations,
		OrganizationIDs: organizationIDs,
		DurationSeconds: time.Since(start).Seconds(),
	}
	reportJSON, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent %v", err)
	}
	fmt.Println(string(reportJSON))

	if global.topic != nil {
		for _, orgAssociation := range orgAssociations {
			_, err = gps.PublishJSON(global.ctx, global.topic, orgAssociation)
			if err != nil {
				log.Println(glo.Entry{
					MicroserviceName: microserviceName,
					Severity:         "WARNING",
					Message:          "publish_org_association_failed",
					Description:      fmt.Sprintf("gps.PublishJSON %v", err),
					RunID:            global.runID,
					OrganizationID:   orgAssociation.OrganizationID,
				})
			}
		}
	}
	if global.bucketHandle != nil {
		objectName := fmt.Sprintf("%s/%s.json", global.settings.Discovery.Sinks.GCS.ObjectPrefix, global.runID)
		err = gcs.UploadJSON(global.ctx, global.bucketHandle, objectName, report)
		if err != nil {
			log.Println(glo.Entry{
				MicroserviceName: microserviceName,
				Severity:         "WARNING",
				Message:          "upload_report_failed",
				Description:      fmt.Sprintf("gcs.UploadJSON %v", err),
				RunID:            global.runID,
			})
		}
	}

	log.Println(glo.Entry{
		MicroserviceName: microserviceName,
		Severity:         "NOTICE",
		Message:          "run_finish",
		Description:      fmt.Sprintf("%d organizations found for %d billing accounts", len(organizationIDs), len(accountNames)),
		RunID:            global.runID,
		OrganizationID:   organizationID,
		LatencySeconds:   time.Since(start).Seconds(),
	})
	return nil
}
