//go:build unix && !linux && !darwin

package fdpath

const supported = false

// resolve validates the descriptor so callers still get InvalidHandle for
// closed fds, then reports that no lookup exists here.
func resolve(h Handle) (string, error) {
	if _, err := descriptor(h); err != nil {
		return "", err
	}
	return "", newError("resolve", h, KindUnsupported, nil)
}
