package utils

import (
	"os"
	"path/filepath"
)

// MaterializeTemp writes data to a fresh temporary file, keeping the
// extension of the original filename so upload services can infer the MIME
// type. The returned cleanup removes the file and must be called on every
// exit path.
func MaterializeTemp(filename string, data []byte) (string, func(), error) {
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", nil, err
	}
	path := tmp.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
