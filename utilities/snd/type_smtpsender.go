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
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender dispatches mail through an SMTP relay
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds an SMTP sender
func NewSMTPSender(host string, port int, username string, password string, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send implements Sender
func (smtpSender *SMTPSender) Send(to string, subject string, htmlBody string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", smtpSender.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)
	if err := smtpSender.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("dialer.DialAndSend to %s %v", to, err)
	}
	return nil
}
