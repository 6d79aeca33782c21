package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var verifyProfile string

// verifyCmd checks a profile's cookie store without writing to it.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the cookie store schema of a profile",
	Long:  `Opens cookies.sqlite read-only, checks that moz_cookies has every column the importer writes and prints its row count.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime("console")
		if err != nil {
			return err
		}
		defer rt.close()

		v, err := rt.service.Verify(cmd.Context(), verifyProfile)
		if err != nil {
			return err
		}

		lines := []string{
			styleTitle.Render("Cookie store"),
			"",
			row("Profile", v.Profile),
			row("Database", v.Database),
			row("Schema", styleOK.Render("ok")),
			row("Rows", fmt.Sprint(v.Rows)),
		}
		fmt.Fprintln(cmd.OutOrStdout(), styleBox.Render(strings.Join(lines, "\n")))
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyProfile, "profile", "p", "", "Profile directory or profile name")
	RootCmd.AddCommand(verifyCmd)
}
