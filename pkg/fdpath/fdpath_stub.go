//go:build !unix && !windows

package fdpath

const supported = false

func resolve(h Handle) (string, error) {
	return "", newError("resolve", h, KindUnsupported, nil)
}
