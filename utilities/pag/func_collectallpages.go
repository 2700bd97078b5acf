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

package pag

// CollectAllPages walks a paginated listing and returns the concatenation of all pages items, in page order
func CollectAllPages(fetch PageFetcher) (items []string, err error) {
	var pageToken string
	for {
		pageItems, nextPageToken, err := fetch(pageToken)
		if err != nil {
			return nil, err
		}
		items = append(items, pageItems...)
		if nextPageToken == "" {
			return items, nil
		}
		pageToken = nextPageToken
	}
}
