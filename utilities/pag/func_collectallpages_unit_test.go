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

import (
	"fmt"
	"testing"
)

type fabricatedPage struct {
	items         []string
	nextPageToken string
}

func fabricatedFetcher(pages map[string]fabricatedPage) PageFetcher {
	return func(pageToken string) ([]string, string, error) {
		page, found := pages[pageToken]
		if !found {
			return nil, "", fmt.Errorf("no page for token %q", pageToken)
		}
		return page.items, page.nextPageToken, nil
	}
}

func TestUnitCollectAllPages(t *testing.T) {
	var testCases = []struct {
		name      string
		pages     map[string]fabricatedPage
		wanted    []string
		shouldErr bool
	}{
		{
			name: "ThreePagesInOrder",
			pages: map[string]fabricatedPage{
				"":      {items: []string{"a", "b"}, nextPageToken: "p2"},
				"p2":    {items: []string{"c"}, nextPageToken: "last"},
				"last":  {items: []string{"d", "e"}, nextPageToken: ""},
				"never": {items: []string{"z"}, nextPageToken: ""},
			},
			wanted: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "SinglePageWithoutToken",
			pages: map[string]fabricatedPage{
				"": {items: []string{"only"}, nextPageToken: ""},
			},
			wanted: []string{"only"},
		},
		{
			name: "EmptyFirstPage",
			pages: map[string]fabricatedPage{
				"": {items: nil, nextPageToken: ""},
			},
			wanted: []string{},
		},
		{
			name: "EmptyMiddlePage",
			pages: map[string]fabricatedPage{
				"":   {items: []string{"a"}, nextPageToken: "p2"},
				"p2": {items: nil, nextPageToken: "p3"},
				"p3": {items: []string{"b"}, nextPageToken: ""},
			},
			wanted: []string{"a", "b"},
		},
		{
			name: "ErrorOnSecondPage",
			pages: map[string]fabricatedPage{
				"": {items: []string{"a"}, nextPageToken: "missing"},
			},
			shouldErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			items, err := CollectAllPages(fabricatedFetcher(tc.pages))
			if tc.shouldErr {
				if err == nil {
					t.Fatalf("should get an error, got items %v", items)
				}
				return
			}
			if err != nil {
				t.Fatalf("should not get an error, got %v", err)
			}
			if len(items) != len(tc.wanted) {
				t.Fatalf("got %v want %v", items, tc.wanted)
			}
			for i := range items {
				if items[i] != tc.wanted[i] {
					t.Errorf("item %d got %s want %s", i, items[i], tc.wanted[i])
				}
			}
		})
	}
}
