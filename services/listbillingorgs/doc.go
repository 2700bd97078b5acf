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
Package listbillingorgs discovers the organizations associated with the billing accounts visible to a delegated billing admin

# Triggered by

The `discover` command, run on demand or from a scheduler.

# Output

- A JSON report on stdout: billing account associations, organization associations with the billing accounts that led to them, and the deduplicated organization ID list.

- Optionally, one PubSub message per organization association.

- Optionally, the full report as a JSON object in a GCS bucket.

# Cardinality

One run walks: (billing accounts) x (projects per account) x (billing users per account).

# Automatic retrying

No. A billing account or project that cannot be read is logged and skipped, it never fails the run.

# Domain Wide Delegation

Yes. The service account must have domain wide delegation on the domain owning the billing accounts, with the following Oauth scopes:

- https://www.googleapis.com/auth/cloudplatformorganizations.readonly

- https://www.googleapis.com/auth/cloud-billing.readonly

- https://www.googleapis.com/auth/cloudplatformprojects.readonly

The ancestry stage impersonates, one by one, the billing users of the account, as one of them should be able to read the project's parent. Users outside the delegation domain are skipped.
*/
package listbillingorgs
