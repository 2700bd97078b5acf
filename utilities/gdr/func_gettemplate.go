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

package gdr

import (
	"context"

	"github.com/altostrat/gwa/utilities/erm"
	"google.golang.org/api/drive/v3"
)

// GetTemplate returns the HTML body of a template document, from the cache when possible
func GetTemplate(ctx context.Context, driveService *drive.Service, retryPolicy erm.RetryPolicy, templateCache *TemplateCache, fileID string) (html string, err error) {
	if html, found := templateCache.Get(fileID); found {
		return html, nil
	}
	html, err = ExportHTML(ctx, driveService, retryPolicy, fileID)
	if err != nil {
		return "", err
	}
	templateCache.Put(fileID, html)
	return html, nil
}
