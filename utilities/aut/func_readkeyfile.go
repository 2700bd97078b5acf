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

package aut

import (
	"fmt"
	"os"
)

// ReadKeyFile reads the service account json key file once, so that delegated clients can be built per subject without rereading it
func ReadKeyFile(keyJSONFilePath string) (keyJSONdata []byte, err error) {
	keyJSONdata, err = os.ReadFile(keyJSONFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(keyJSONFilePath) %v", err)
	}
	return keyJSONdata, nil
}
