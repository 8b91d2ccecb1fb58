package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/dotconf/internal/errors"
)

// AppName is the application-identifying directory component under the
// per-user config directory.
const AppName = "dotconf"

// StoreFilename is the default backing-store file name.
const StoreFilename = "config.json"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified
// permissions. If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the per-user directory holding dotconf's own files.
// Returns: <ConfigHome>/dotconf/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DefaultStorePath returns the default backing-store locator.
// Returns: <ConfigHome>/dotconf/config.json
//
// The file is not created here; reading a store that does not exist yet is a
// defined no-op and the first writeback flush creates it.
func DefaultStorePath() string {
	return filepath.Join(AppConfigDir(), StoreFilename)
}
