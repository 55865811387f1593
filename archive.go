package gdtf

import (
	"archive/zip"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
)

// DescriptionFile is the archive member holding the description.
const DescriptionFile = "description.xml"

// ParseArchive decodes the description held in a .gdtf archive.
func ParseArchive(ctx context.Context, r io.ReaderAt, size int64, options ...Option) (*GDTF, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, `failed to read archive`)
	}

	f, err := zr.Open(DescriptionFile)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to open %s in archive`, DescriptionFile)
	}
	defer f.Close()

	return ParseReader(ctx, f, options...)
}

// OpenArchive decodes the description of the .gdtf archive at path.
func OpenArchive(ctx context.Context, path string, options ...Option) (*GDTF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to open %s`, path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, `failed to stat %s`, path)
	}
	return ParseArchive(ctx, f, fi.Size(), options...)
}
