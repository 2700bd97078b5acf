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

package snd

import (
	"context"
	"fmt"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender dispatches mail through the Gmail API as the impersonated sender account
type GmailSender struct {
	ctx          context.Context
	gmailService *gmail.Service
	from         string
}

// NewGmailSender builds a Gmail API sender from a client option impersonating the sender account
func NewGmailSender(ctx context.Context, clientOption option.ClientOption, from string) (*GmailSender, error) {
	gmailService, err := gmail.NewService(ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("gmail.NewService %v", err)
	}
	return &GmailSender{ctx: ctx, gmailService: gmailService, from: from}, nil
}

// Send implements Sender
func (gmailSender *GmailSender) Send(to string, subject string, htmlBody string) error {
	message := gmail.Message{
		Raw: buildRawMessage(gmailSender.from, to, subject, htmlBody),
	}
	_, err := gmailSender.gmailService.Users.Messages.Send("me", &message).Context(gmailSender.ctx).Do()
	if err != nil {
		return fmt.Errorf("gmailService.Users.Messages.Send to %s %v", to, err)
	}
	return nil
}
