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

package erm

import "time"

// RetryPolicy bounded retry with exponential backoff
// Tries is the total number of attempts, not the number of retries
type RetryPolicy struct {
	Tries      int
	BaseDelay  time.Duration
	Multiplier int64
}

// DefaultRetryPolicy 3 attempts, 1 second initial delay, doubling backoff
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Tries:      3,
		BaseDelay:  1 * time.Second,
		Multiplier: 2,
	}
}
