package cmd

import (
	"fmt"

	"github.com/PolarWolf314/manuka/internal/ecies"
	"github.com/PolarWolf314/manuka/internal/ui"

	"github.com/spf13/cobra"
)

var keypairCmd = &cobra.Command{
	Use:   "keypair",
	Short: "Generate a new secp256k1 keypair",
	Long: `Generates a fresh keypair and prints both halves as hex. The public key
goes into your .env file as DOTENV_PUBLIC_KEY; the private key belongs in
.env.keys or a DOTENV_PRIVATE_KEY environment variable and must never be
committed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Generating keypair")

		kp, err := ecies.GenerateKeypair()
		if err != nil {
			return fatal(Logger.ErrorfAndReturn("failed to generate keypair: %v", err))
		}
		defer kp.Zero()

		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", "DOTENV_PUBLIC_KEY", kp.PublicKey())
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", "DOTENV_PRIVATE_KEY", kp.PrivateKey())
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Info.Sprint("→")+" Keep the private key out of version control")
		return nil
	},
}
