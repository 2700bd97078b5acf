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
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/altostrat/gwa/utilities/glo"
)

// Envelope the JSON response body. The outcome code travels here, the HTTP status stays 200.
type Envelope struct {
	Code    int         `json:"code"`
	Msg     string      `json:"msg,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(envelope)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: microserviceName,
			Severity:         "WARNING",
			Message:          "write_envelope_failed",
			Description:      fmt.Sprintf("json.NewEncoder(w).Encode %v", err),
		})
	}
}
