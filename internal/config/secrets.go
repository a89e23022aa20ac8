package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zalando/go-keyring"
)

// ResolvePassword fills WebPass from the OS keyring when a user is set and no
// password came from the file or environment. A missing entry is not an error.
func (s *Settings) ResolvePassword() error {
	if s.WebUser == "" || s.WebPass != "" {
		return nil
	}

	p, err := keyring.Get(KeyringService, s.WebUser)
	if err == nil {
		s.WebPass = p
		return nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		slog.Debug(MsgPassFail,
			LogKeyUser, s.WebUser,
			LogKeyError, err,
			LogKeyComponent, CompSettings)
		return nil
	}
	return fmt.Errorf("%s: %w", ErrSecretLookup, err)
}

// StorePassword saves the web source password in the OS keyring.
func StorePassword(user, pass string) error {
	if err := keyring.Set(KeyringService, user, pass); err != nil {
		return fmt.Errorf("%s: %w", ErrSecretStore, err)
	}
	return nil
}
