package cmd

import (
	"github.com/PolarWolf314/manuka/internal/envfile"
	"github.com/PolarWolf314/manuka/internal/ui"

	"github.com/spf13/cobra"
)

var (
	encryptFiles       []string
	encryptKeys        []string
	encryptExcludeKeys []string
	encryptKeysFile    string
	encryptPublicKey   string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt values in .env files in place",
	Long: `Encrypts every eligible plaintext value against the file's public key,
preserving comments, blank lines and layout. A file without a
DOTENV_PUBLIC_KEY entry gets a freshly generated keypair: the public half
is inserted at the top of the file, the private half is saved to the
sibling .env.keys file. Already-encrypted values are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting environment files...")
		defer cleanup()

		files := encryptFiles
		if len(files) == 0 {
			files = []string{".env"}
		}

		total := 0
		for _, path := range files {
			Logger.Debugf("Encrypting %s", path)
			result, err := envfile.EncryptFile(path, envfile.EncryptOptions{
				IncludeKeys:       encryptKeys,
				ExcludeKeys:       encryptExcludeKeys,
				PublicKeyOverride: encryptPublicKey,
				KeysFilePath:      encryptKeysFile,
			})
			if err != nil {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to encrypt " + ui.Path.Sprint(path) + "\n" +
					ui.Error.Sprint("Error: ") + err.Error()
				return fatal(err)
			}
			Logger.Infof("Encrypted %d entries in %s", result.Encrypted, path)
			if result.GeneratedKey {
				Logger.Infof("Generated a new keypair for %s", path)
			}
			total += result.Encrypted
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Environment files encrypted successfully!\n" +
			ui.Info.Sprint("→") + " You can now safely commit them to version control " +
			ui.Muted.Sprint("keep .env.keys out")
		Logger.Infof("Encrypt command completed: %d entries across %d files", total, len(files))
		return nil
	},
}

func init() {
	encryptCmd.Flags().StringSliceVarP(&encryptFiles, "env-file", "f", nil, "path to .env file (repeatable)")
	encryptCmd.Flags().StringSliceVarP(&encryptKeys, "key", "K", nil, "only encrypt the named keys (repeatable)")
	encryptCmd.Flags().StringSliceVarP(&encryptExcludeKeys, "exclude-key", "e", nil, "never encrypt the named keys (repeatable)")
	encryptCmd.Flags().StringVarP(&encryptKeysFile, "env-keys-file", "k", "", "path to .env.keys file")
	encryptCmd.Flags().StringVar(&encryptPublicKey, "public-key", "", "encrypt against this public key instead of the file's own")
}
