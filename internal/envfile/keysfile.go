package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/manuka/internal/dotenv"
	"github.com/PolarWolf314/manuka/internal/utils"
)

// keysFileBanner heads a freshly created .env.keys file. The wording
// matches dotenvx so mixed-tool repositories look uniform.
const keysFileBanner = `#/------------------!DOTENV_PRIVATE_KEYS!-------------------/
#/ private decryption keys. DO NOT commit to source control /
#/     [how it works](https://dotenvx.com/encryption)       /
#/----------------------------------------------------------/
`

// SavePrivateKey records privateHex in the keys file under the variable
// name derived from envPath. An existing entry for that name is replaced
// in place; a new entry is appended under a comment naming the env file.
// The keys file is created with the banner when missing and always kept
// at mode 0600.
func SavePrivateKey(keysPath, envPath, privateHex string) error {
	if keysPath == "" {
		keysPath = filepath.Join(filepath.Dir(envPath), KeysFileName)
	}
	varName := PrivateKeyVarName(envPath)

	var content string
	if data, err := os.ReadFile(keysPath); err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", keysPath, err)
	}

	if content == "" {
		content = keysFileBanner + "\n"
	}

	f := dotenv.Parse(content)
	if existing := f.Lookup(varName); existing != nil {
		start, end := existing.ValueSpan()
		content = f.Splice([]dotenv.Edit{{Start: start, End: end, Text: privateHex}})
	} else {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += fmt.Sprintf("# %s\n%s=%s\n", filepath.Base(envPath), varName, privateHex)
	}

	return utils.AtomicWriteFile(keysPath, []byte(content), 0600)
}
