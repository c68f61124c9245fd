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

package paths

import (
	"os"
	"path/filepath"

	"github.com/shyisa/shymem/errors"
	"github.com/spf13/afero"
)

// the base path for all resources. use getBasePath() rather than this value
// directly.
const baseResourcePath = ".shymem"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. Empty resource
// elements are ignored.
func ResourcePath(fsys afero.Fs, resource ...string) (string, error) {
	base, err := getBasePath(fsys)
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	return filepath.Join(p...), nil
}

// getBasePath returns baseResourcePath if it exists in the current directory
// of the filesystem. otherwise the base path is in the user's config
// directory.
//
// the existence of the resource is not checked.
func getBasePath(fsys afero.Fs) (string, error) {
	if ok, _ := afero.DirExists(fsys, baseResourcePath); ok {
		return baseResourcePath, nil
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return "", errors.New(errors.ResourceNotFound, "paths", err)
	}

	return filepath.Join(home, baseResourcePath[1:]), nil
}
