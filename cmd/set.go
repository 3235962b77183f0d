package cmd

import (
	"github.com/PolarWolf314/manuka/internal/envfile"
	"github.com/PolarWolf314/manuka/internal/ui"

	"github.com/spf13/cobra"
)

var (
	setFile     string
	setPlain    bool
	setKeysFile string
)

var setCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a single variable, encrypted by default",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		Logger.Infof("Setting %s in %s", key, setFile)

		err := envfile.Set(setFile, key, value, envfile.SetOptions{
			Plain:        setPlain,
			KeysFilePath: setKeysFile,
		})
		if err != nil {
			return fatal(Logger.ErrorfAndReturn("failed to set %s: %v", key, err))
		}

		mode := "encrypted"
		if setPlain {
			mode = "plain"
		}
		cmd.Println(ui.Success.Sprint("✓") + " Set " + ui.Key.Sprint(key) + " " + ui.Muted.Sprint(mode) + " in " + ui.Path.Sprint(setFile))
		return nil
	},
}

func init() {
	setCmd.Flags().StringVarP(&setFile, "env-file", "f", ".env", "path to .env file")
	setCmd.Flags().BoolVarP(&setPlain, "plain", "p", false, "store the raw value without encryption")
	setCmd.Flags().StringVarP(&setKeysFile, "env-keys-file", "k", "", "path to .env.keys file")
}
