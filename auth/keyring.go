// Package auth stores the download client credential in the operating
// system keyring so it never touches the config file on disk.
package auth

import "github.com/zalando/go-keyring"

// Entry coordinates for the RPC password. A single well-known slot, the
// username lives in the regular config.
const (
	service = "episan-cli"
	slot    = "client-password"
)

// SetClientPassword writes the daemon RPC password.
func SetClientPassword(password string) error {
	return keyring.Set(service, slot, password)
}

// GetClientPassword reads the daemon RPC password back. Hosts without a
// secret service report an error here and the caller decides whether
// that is fatal.
func GetClientPassword() (string, error) {
	return keyring.Get(service, slot)
}

// DeleteClientPassword drops the stored password. Used by "episan client --forget".
func DeleteClientPassword() error {
	return keyring.Delete(service, slot)
}
