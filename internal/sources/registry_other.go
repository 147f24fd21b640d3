//go:build !windows

package sources

import (
	"fmt"

	"github.com/desertthunder/pinx/internal/shared"
)

type unavailableRegistry struct{}

// NewSystemRegistry returns a reader whose every read fails with
// [shared.ErrUnsupported]. Registry-backed sources treat that as an empty
// result, so enumeration still works degraded off Windows.
func NewSystemRegistry() RegistryReader {
	return unavailableRegistry{}
}

func (unavailableRegistry) BinaryValue(key, name string) ([]byte, error) {
	return nil, fmt.Errorf("%w: no registry on this platform", shared.ErrUnsupported)
}

func (unavailableRegistry) SubKeys(key string) ([]string, error) {
	return nil, fmt.Errorf("%w: no registry on this platform", shared.ErrUnsupported)
}
