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
	"fmt"
	"io"

	"github.com/altostrat/gwa/utilities/erm"
	"google.golang.org/api/drive/v3"
)

const exportMimeType = "text/html"

// ExportHTML exports a Drive document as HTML
func ExportHTML(ctx context.Context, driveService *drive.Service, retryPolicy erm.RetryPolicy, fileID string) (html string, err error) {
	var body []byte
	err = retryPolicy.Do("driveService.Files.Export", func() error {
		response, err := driveService.Files.Export(fileID, exportMimeType).Context(ctx).Download()
		if err != nil {
			return err
		}
		defer response.Body.Close()
		body, err = io.ReadAll(response.Body)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("driveService.Files.Export %s %v", fileID, err)
	}
	return string(body), nil
}
