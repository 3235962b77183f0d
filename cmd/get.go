package cmd

import (
	"fmt"
	"sort"

	"github.com/PolarWolf314/manuka/internal/envfile"

	"github.com/spf13/cobra"
)

var (
	getFile       string
	getPrivateKey string
)

var getCmd = &cobra.Command{
	Use:   "get [KEY]",
	Short: "Print one value or every value of a .env file",
	Long: `Runs the loader on the file — decrypting and expanding as at run time —
and prints the result. With a KEY argument only that value is printed;
without, every binding is printed as KEY=value.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := loadOptionsFromSettings()
		opts.PrivateKeyOverride = getPrivateKey

		if len(args) == 1 {
			value, err := envfile.Get(getFile, args[0], opts)
			if err != nil {
				return fatal(Logger.ErrorfAndReturn("failed to get %s: %v", args[0], err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}

		values, err := envfile.GetAll(getFile, opts)
		if err != nil {
			return fatal(Logger.ErrorfAndReturn("failed to load %s: %v", getFile, err))
		}

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, values[k])
		}
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&getFile, "env-file", "f", ".env", "path to .env file")
	getCmd.Flags().StringVar(&getPrivateKey, "private-key", "", "additional private key to decrypt with (must match the file's DOTENV_PUBLIC_KEY)")
}
