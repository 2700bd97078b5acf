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
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/altostrat/gwa/utilities/aut"
	"github.com/altostrat/gwa/utilities/erm"
	"github.com/altostrat/gwa/utilities/gdr"
	"github.com/altostrat/gwa/utilities/snd"
	"github.com/altostrat/gwa/utilities/solution"
	"github.com/altostrat/gwa/utilities/validater"
)

const microserviceName = "provisionusers"

// Global structure for global variables
type Global struct {
	ctx             context.Context
	settings        solution.Settings
	keyJSONdata     []byte
	retryPolicy     erm.RetryPolicy
	directory       directoryClient
	driveService    *drive.Service
	templateCache   *gdr.TemplateCache
	fetchTemplate   func(fileID string) (string, error)
	sender          snd.Sender
	firestoreClient *firestore.Client
}

// Initialize builds the delegated API clients, the mail sender and the optional audit sink
func Initialize(ctx context.Context, global *Global, settings solution.Settings) (err error) {
	global.ctx = ctx
	global.settings = settings
	global.retryPolicy = erm.DefaultRetryPolicy()

	err = validater.ValidateStruct(settings.Provisioning, "settings/provisioning")
	if err != nil {
		return err
	}
	global.keyJSONdata, err = aut.ReadKeyFile(settings.Provisioning.KeyJSONFilePath)
	if err != nil {
		return err
	}
	global.directory = newAPIDirectory(global)

	var driveClientOption option.ClientOption
	driveClientOption, err = aut.GetClientOption(ctx, global.keyJSONdata, settings.Provisioning.TemplateSubject, []string{drive.DriveScope})
	if err != nil {
		return err
	}
	global.driveService, err = drive.NewService(ctx, driveClientOption)
	if err != nil {
		return fmt.Errorf("drive.NewService %v", err)
	}
	global.templateCache, err = gdr.NewTemplateCache(settings.Provisioning.TemplateCache.Enabled,
		time.Duration(settings.Provisioning.TemplateCache.TTLMinutes)*time.Minute)
	if err != nil {
		return fmt.Errorf("gdr.NewTemplateCache %v", err)
	}
	global.fetchTemplate = func(fileID string) (string, error) {
		return gdr.GetTemplate(global.ctx, global.driveService, global.retryPolicy, global.templateCache, fileID)
	}

	switch settings.Provisioning.Sender.Kind {
	case "smtp":
		global.sender = snd.NewSMTPSender(settings.Provisioning.Sender.SMTP.Host,
			settings.Provisioning.Sender.SMTP.Port,
			settings.Provisioning.Sender.SMTP.Username,
			settings.Provisioning.Sender.SMTP.Password,
			settings.Provisioning.Sender.From)
	default:
		var gmailClientOption option.ClientOption
		gmailClientOption, err = aut.GetClientOption(ctx, global.keyJSONdata, settings.Provisioning.Sender.From, []string{gmail.GmailSendScope})
		if err != nil {
			return err
		}
		global.sender, err = snd.NewGmailSender(ctx, gmailClientOption, settings.Provisioning.Sender.From)
		if err != nil {
			return fmt.Errorf("snd.NewGmailSender %v", err)
		}
	}

	if settings.Provisioning.Audit.Enabled {
		global.firestoreClient, err = firestore.NewClient(ctx, settings.Provisioning.Audit.ProjectID)
		if err != nil {
			return fmt.Errorf("firestore.NewClient %v", err)
		}
	}
	return nil
}
