//go:build !unix

package process

// On Windows there is no stop/continue signal pair.

// NewProbe returns the probe for the running platform.
func NewProbe() (Probe, error) {
	return nil, ErrUnsupported
}

func (h *Handle) Send(_ Signal) error {
	return ErrUnsupported
}
