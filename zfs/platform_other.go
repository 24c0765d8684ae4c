//go:build !unix

package zfs

import "runtime"

func hostPlatformName() (string, error) {
	return runtime.GOOS, nil
}
