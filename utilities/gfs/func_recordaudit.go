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

package gfs

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/altostrat/gwa/utilities/erm"
	"github.com/altostrat/gwa/utilities/glo"
)

// RecordAudit writes an audit record with retries on transient errors
func RecordAudit(ctx context.Context,
	firestoreClient *firestore.Client,
	collectionID string,
	documentID string,
	auditRecord AuditRecord,
	retriesNumber time.Duration) (err error) {
	documentPath := fmt.Sprintf("%s/%s", collectionID, documentID)
	var i time.Duration
	for i = 0; i < retriesNumber; i++ {
		_, err = firestoreClient.Doc(documentPath).Set(ctx, auditRecord)
		if err != nil {
			log.Println(glo.Entry{
				Severity:    "CRITICAL",
				Message:     "redo_on_transient",
				Description: fmt.Sprintf("iteration %d firestoreClient.Doc(documentPath).Set(ctx, auditRecord) %v", i, err),
			})
			if erm.IsNotTransientElseWait(err, i*100*time.Millisecond) {
				return err
			}
		} else {
			return nil
		}
	}
	return err
}
