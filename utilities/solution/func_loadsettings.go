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

package solution

import (
	"fmt"

	"github.com/altostrat/gwa/utilities/ffo"
)

// LoadSettings reads the yaml settings file and fills in defaults.
// Each service validates its own settings section on initialization.
func LoadSettings(path string) (settings Settings, err error) {
	err = ffo.ReadUnmarshalYAML(path, &settings)
	if err != nil {
		return settings, fmt.Errorf("ReadUnmarshalYAML %s %v", path, err)
	}
	settings.Situate()
	return settings, nil
}
