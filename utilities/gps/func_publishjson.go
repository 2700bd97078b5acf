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

package gps

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// PublishJSON marshals the value and publishes it, blocking until the server acknowledges
// No retry on publish as the GO client already implements it
func PublishJSON(ctx context.Context, topic *pubsub.Topic, v interface{}) (messageID string, err error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("json.Marshal %v", err)
	}
	publishResult := topic.Publish(ctx, &pubsub.Message{Data: data})
	messageID, err = publishResult.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publishResult.Get %v", err)
	}
	return messageID, nil
}
