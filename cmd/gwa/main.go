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

// Command gwa runs the billing organization discovery pipeline and the self service provisioning server
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/altostrat/gwa/services/listbillingorgs"
	"github.com/altostrat/gwa/services/provisionusers"
	"github.com/altostrat/gwa/utilities/ffo"
	"github.com/altostrat/gwa/utilities/glo"
	"github.com/altostrat/gwa/utilities/solution"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Println(glo.Entry{
			Severity:    "CRITICAL",
			Message:     "command_failed",
			Description: err.Error(),
		})
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var settingsFilePath string

	rootCmd := &cobra.Command{
		Use:           "gwa",
		Short:         "Google Workspace and Cloud admin automation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&settingsFilePath, "settings", solution.SettingsFileName, "path to the yaml settings file")

	discoverCmd := &cobra.Command{
		Use:   "discover",
		Short: "List the organizations associated with the visible billing accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			settings, err := solution.LoadSettings(settingsFilePath)
			if err != nil {
				return err
			}
			var global listbillingorgs.Global
			err = listbillingorgs.Initialize(ctx, &global, settings)
			if err != nil {
				return err
			}
			return listbillingorgs.Run(&global)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the self service provisioning API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			settings, err := solution.LoadSettings(settingsFilePath)
			if err != nil {
				return err
			}
			var global provisionusers.Global
			err = provisionusers.Initialize(ctx, &global, settings)
			if err != nil {
				return err
			}
			log.Println(glo.Entry{
				Severity:    "NOTICE",
				Message:     "serving",
				Description: fmt.Sprintf("listening on %s", settings.Provisioning.ListenAddress),
			})
			return http.ListenAndServe(settings.Provisioning.ListenAddress, provisionusers.Router(&global))
		},
	}

	dumpSettingsCmd := &cobra.Command{
		Use:   "dump-settings",
		Short: "Write the situated settings back as yaml, with defaults filled in",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := solution.LoadSettings(settingsFilePath)
			if err != nil {
				return err
			}
			return ffo.MarshalYAMLWrite(settingsFilePath+".situated", settings)
		},
	}

	rootCmd.AddCommand(discoverCmd, serveCmd, dumpSettingsCmd)
	return rootCmd
}
