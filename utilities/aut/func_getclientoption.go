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
	"context"

	"google.golang.org/api/option"
)

// GetClientOption build a clientOption impersonating the given subject with the given scopes
func GetClientOption(ctx context.Context, keyJSONdata []byte, userToImpersonate string, scopes []string) (option.ClientOption, error) {
	jwtConfig, err := getJWTConfigAndImpersonate(keyJSONdata, userToImpersonate, scopes)
	if err != nil {
		return nil, err
	}

	httpClient := jwtConfig.Client(ctx)
	// Use client option as admin.New(httpClient) is deprecated https://godoc.org/google.golang.org/api/admin/directory/v1#New
	return option.WithHTTPClient(httpClient), nil
}
