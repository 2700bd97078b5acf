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

import (
	"log"
	"time"
)

// Do calls the function until it succeeds or the attempts are exhausted
// The delay between attempts starts at BaseDelay and is multiplied by Multiplier after each failure
// Only transient (5xx) errors are retried, any other error is returned immediately
// The error of the last attempt is returned
func (retryPolicy RetryPolicy) Do(callDescription string, call func() error) (err error) {
	delay := retryPolicy.BaseDelay
	for attempt := 1; attempt < retryPolicy.Tries; attempt++ {
		err = call()
		if err == nil {
			return nil
		}
		log.Printf("WARNING - %s attempt %d: %v", callDescription, attempt, err)
		if IsNotTransientElseWait(err, delay) {
			return err
		}
		delay = delay * time.Duration(retryPolicy.Multiplier)
	}
	return call()
}
