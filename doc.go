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

/*
Package gwa GWA G Suite Workspace Automation

## What

Two small automation surfaces on top of Google Cloud and G Suite admin APIs:

1. Discover which organizations are associated with a set of billing accounts,
by walking billing account IAM policies and project ancestry with delegated
service account credentials

2. Let an authenticated end user self provision a directory account on a managed
domain: look up a user, create a user, set a password, grant admin when the
domain settings say so, and send templated notification emails whose HTML bodies
live in Drive documents

## Why

- Billing administrators need to know which customer organizations consume which
billing accounts, and the billing API does not expose that association directly
- Provisioning accounts on many small managed domains is repetitive and error
prone when done through the admin console
*/
package gwa
