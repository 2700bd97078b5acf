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

import "time"

// AuditRecord traces one provisioning action on one directory user
type AuditRecord struct {
	Action    string    `firestore:"action" json:"action"`
	Domain    string    `firestore:"domain" json:"domain"`
	User      string    `firestore:"user" json:"user"`
	Requestor string    `firestore:"requestor" json:"requestor"`
	RequestID string    `firestore:"requestID" json:"requestID"`
	StepStack []string  `firestore:"stepStack,omitempty" json:"stepStack,omitempty"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}
