//go:build !linux

package keyboard

// NewSource returns the key source for the running platform.
func NewSource() (Source, error) {
	return nil, ErrUnsupported
}
