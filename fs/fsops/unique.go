package fsops

import (
	"io"
	"strings"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// DefaultUniqueModel is the model UniquePath uses for an empty model.
const DefaultUniqueModel = "%%%%-%%%%-%%%%-%%%%"

const hexDigits = "0123456789abcdef"

// UniquePath returns model with every '%' replaced by an independent
// random lowercase hexadecimal digit. Other characters are kept. The
// result is only generated; nothing is created or reserved.
func (f *FS) UniquePath(model fspath.Path) (fspath.Path, error) {
	const op = "UniquePath"
	if err := f.valid(op, model); err != nil {
		return fspath.Path{}, err
	}
	if model.Empty() {
		model = fspath.NewStyle(model.Style(), DefaultUniqueModel)
	}

	s := []byte(model.Generic())
	buf := make([]byte, strings.Count(model.Generic(), "%"))
	if _, err := io.ReadFull(f.opts.Random, buf); err != nil {
		return fspath.Path{}, f.fail(op, model, fspath.Path{}, errors.Wrap(err, errors.CodeIOError, "read random source"))
	}

	j := 0
	for i, c := range s {
		if c == '%' {
			s[i] = hexDigits[buf[j]&0x0f]
			j++
		}
	}
	return fspath.NewStyle(model.Style(), string(s)), nil
}
