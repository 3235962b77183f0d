package cmd

import (
	"github.com/PolarWolf314/manuka/internal/envfile"
	"github.com/PolarWolf314/manuka/internal/ui"

	"github.com/spf13/cobra"
)

var (
	decryptFiles      []string
	decryptKeysFile   string
	decryptPrivateKey string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt values in .env files in place",
	Long: `Opens every encrypted value with the private key resolved from .env.keys,
the DOTENV_PRIVATE_KEY environment variables, or --private-key. Plaintext
entries and layout are untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		spinner, cleanup := startSpinner("Decrypting environment files...")
		defer cleanup()

		files := decryptFiles
		if len(files) == 0 {
			files = []string{".env"}
		}

		total := 0
		for _, path := range files {
			Logger.Debugf("Decrypting %s", path)
			n, err := envfile.DecryptFile(path, envfile.DecryptOptions{
				KeysFilePath:       decryptKeysFile,
				PrivateKeyOverride: decryptPrivateKey,
			})
			if err != nil {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to decrypt " + ui.Path.Sprint(path) + "\n" +
					ui.Error.Sprint("Error: ") + err.Error()
				return fatal(err)
			}
			Logger.Infof("Decrypted %d entries in %s", n, path)
			total += n
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Environment files decrypted successfully!\n" +
			ui.Info.Sprint("→") + " Re-run " + ui.Code.Sprint("manuka encrypt") + " before committing"
		Logger.Infof("Decrypt command completed: %d entries across %d files", total, len(files))
		return nil
	},
}

func init() {
	decryptCmd.Flags().StringSliceVarP(&decryptFiles, "env-file", "f", nil, "path to .env file (repeatable)")
	decryptCmd.Flags().StringVarP(&decryptKeysFile, "env-keys-file", "k", "", "path to .env.keys file")
	decryptCmd.Flags().StringVar(&decryptPrivateKey, "private-key", "", "additional private key to decrypt with (must match the file's DOTENV_PUBLIC_KEY)")
}
