// This file is part of shymem.
//
// shymem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// shymem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with shymem.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package image

import (
	stderrors "errors"
	"io/fs"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory"
	"github.com/shyisa/shymem/logger"
	"github.com/spf13/afero"
)

// Save writes the image of the RAM in mem to the named file.
func Save(fsys afero.Fs, mem *memory.Memory, path string) error {
	data, err := Encode(mem)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return errors.New(errors.IOError, "save", path, err)
	}

	logger.Logf(logger.Allow, "image", "saved %d bytes to %s", len(data), path)

	return nil
}

// Load reads the image in the named file and writes it to the RAM in mem. The
// file is read in full before memory is changed.
func Load(fsys afero.Fs, mem *memory.Memory, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.New(errors.ResourceNotFound, path, err)
		}
		return errors.New(errors.IOError, "load", path, err)
	}

	if err := Decode(mem, data); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "image", "loaded %d bytes from %s", len(data), path)

	return nil
}
