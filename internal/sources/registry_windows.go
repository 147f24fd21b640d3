//go:build windows

package sources

import (
	"fmt"

	"github.com/desertthunder/pinx/internal/shared"
	"golang.org/x/sys/windows/registry"
)

// systemRegistry reads HKEY_CURRENT_USER through the real registry API.
type systemRegistry struct{}

// NewSystemRegistry returns the per-user registry hive reader.
func NewSystemRegistry() RegistryReader {
	return systemRegistry{}
}

func (systemRegistry) BinaryValue(key, name string) ([]byte, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", shared.ErrRegistryAccess, key, err)
	}
	defer k.Close()

	value, _, err := k.GetBinaryValue(name)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s\\%s: %v", shared.ErrRegistryAccess, key, name, err)
	}
	return value, nil
}

func (systemRegistry) SubKeys(key string) ([]string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", shared.ErrRegistryAccess, key, err)
	}
	defer k.Close()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", shared.ErrRegistryAccess, key, err)
	}
	return names, nil
}
