package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/rbundle/cmd/bundle"
	"github.com/ValentinKolb/rbundle/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "rbundle",
		Short: "indexed resource bundle tool",
		Long: fmt.Sprintf(`rbundle (v%s)

Reads resource bundles (properties, dotenv, YAML or JSON files from local
directories, S3 or Azure Blob Storage) and iterates their indexed keys
(key_0, key_1_2, key_1_2_3) in numeric index order.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rbundle",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rbundle v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(bundle.Commands...)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupBundleFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
