// Package unixgram opens the host side of a file-backed virtual network
// device: a UNIX domain datagram socket connected to a filesystem path.
package unixgram

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ErrPathTooLong reports a socket path that does not fit in sockaddr_un.
// Connecting to a silently truncated path would reach the wrong
// endpoint, so the path is rejected before any socket is created.
var ErrPathTooLong = errors.New("unix socket path too long")

// maxPathLen leaves room for the trailing NUL in sockaddr_un.sun_path.
var maxPathLen = len(unix.RawSockaddrUnix{}.Path) - 1

// ConnectError carries the errno of a failed connect. A missing
// listener is a normal condition here: datagram peers come and go, and
// which side is created first is the operator's business.
type ConnectError struct {
	Path  string
	Errno unix.Errno
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect unixgram socket %q: %s", e.Path, e.Errno.Error())
}

func (e *ConnectError) Unwrap() error {
	return e.Errno
}

// Connect creates a UNIX domain datagram socket and connects it to
// path. Ownership of the returned file transfers to the caller, which
// must close it when the device attachment is torn down.
func Connect(path string) (*os.File, error) {
	if len(path) > maxPathLen {
		return nil, fmt.Errorf("%w: %q is %d bytes, max %d", ErrPathTooLong, path, len(path), maxPathLen)
	}

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create unixgram socket: %w", err)
	}
	unix.CloseOnExec(fd)

	if err := unix.Connect(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		_ = unix.Close(fd)
		var errno unix.Errno
		if errors.As(err, &errno) {
			return nil, &ConnectError{Path: path, Errno: errno}
		}
		return nil, fmt.Errorf("failed to connect unixgram socket %q: %w", path, err)
	}

	logrus.Debugf("connected unixgram socket %q", path)
	return os.NewFile(uintptr(fd), path), nil
}
