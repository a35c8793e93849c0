//go:build !windows && !((linux || freebsd || darwin) && (amd64 || arm64))

package dl

func open(string) (Handle, error) { return 0, ErrUnsupported }

func sym(Handle, string) (uintptr, error) { return 0, ErrUnsupported }

func closeLib(Handle) error { return ErrUnsupported }
