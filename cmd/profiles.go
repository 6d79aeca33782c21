package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profilesJSON bool

// profilesCmd lists the profiles found in profiles.ini.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List Firefox and Zen profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime("console")
		if err != nil {
			return err
		}
		defer rt.close()

		profiles := rt.service.Profiles()
		if profilesJSON {
			return writeJSON(cmd.OutOrStdout(), profiles)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderProfiles(profiles))
		return nil
	},
}

func init() {
	profilesCmd.Flags().BoolVar(&profilesJSON, "json", false, "Print profiles as JSON")
	RootCmd.AddCommand(profilesCmd)
}
