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

package gcs

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/storage"
)

// UploadJSON marshals value as indented JSON and writes it to objectName in the bucket
func UploadJSON(ctx context.Context,
	bucketHandle *storage.BucketHandle,
	objectName string,
	value interface{}) (err error) {
	content, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent %v", err)
	}
	storageObject := bucketHandle.Object(objectName)
	storageObjectWriter := storageObject.NewWriter(ctx)
	storageObjectWriter.ContentType = "application/json"
	_, err = storageObjectWriter.Write(content)
	if err != nil {
		return fmt.Errorf("storageObjectWriter.Write %s %v", objectName, err)
	}
	err = storageObjectWriter.Close()
	if err != nil {
		return fmt.Errorf("storageObjectWriter.Close %s %v", objectName, err)
	}
	return nil
}
