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
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/altostrat/gwa/utilities/gfs"
	"github.com/altostrat/gwa/utilities/glo"
)

// recordAudit traces a successful mutation. Audit failures never fail the request.
func (global *Global) recordAudit(action string, domain string, user string, requestor string, requestID string) {
	if global.firestoreClient == nil {
		return
	}
	auditRecord := gfs.AuditRecord{
		Action:    action,
		Domain:    domain,
		User:      user,
		Requestor: requestor,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
	err := gfs.RecordAudit(global.ctx,
		global.firestoreClient,
		global.settings.Provisioning.Audit.CollectionID,
		fmt.Sprintf("%v", uuid.New()),
		auditRecord,
		4)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: microserviceName,
			Severity:         "WARNING",
			Message:          "record_audit_failed",
			Description:      fmt.Sprintf("gfs.RecordAudit %s %v", action, err),
			RequestID:        requestID,
			Domain:           domain,
			User:             user,
		})
	}
}
