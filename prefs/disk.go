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

package prefs

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/logger"
	"github.com/spf13/afero"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	fs      afero.Fs
	path    string
	entries map[string]pref

	// keys in the order they were added. values are loaded in this order
	order []string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(fsys afero.Fs, path string) (*Disk, error) {
	if fsys == nil {
		return nil, errors.Errorf(errors.InvalidInput, "prefs: no filesystem for %s", path)
	}
	return &Disk{
		fs:      fsys,
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk. Values are
// loaded in the order they are added, so a value with a hook that changes
// another value should be added before the value it changes.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(separator)) || strings.ContainsAny(key, " \n") {
		return errors.Errorf(errors.InvalidInput, "prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; !ok {
		dsk.order = append(dsk.order, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their reset value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.order {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// read the file and return the key/value pairs. a missing file is not an
// error and returns no entries.
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	data, err := afero.ReadFile(dsk.fs, dsk.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, errors.New(errors.IOError, "prefs", dsk.path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))

	// the boilerplate line is optional
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate || strings.TrimSpace(line) == "" {
			continue
		}

		kv := strings.SplitN(line, separator, 2)
		if len(kv) != 2 {
			logger.Logf(logger.Allow, "prefs", "ignoring malformed line in %s: %s", dsk.path, line)
			continue
		}
		entries[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.New(errors.IOError, "prefs", dsk.path, err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range dsk.entries {
		entries[k] = v.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, entries[k]))
	}

	if err := afero.WriteFile(dsk.fs, dsk.path, []byte(s.String()), 0o644); err != nil {
		return errors.New(errors.IOError, "prefs", dsk.path, err)
	}

	return nil
}

// Load preference values from disk. A value on the command line stack takes
// precedence over the value in the file. Keys in the file that have not been
// added to this Disk instance are ignored. A missing file is not an error.
func (dsk *Disk) Load() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	cmdline := make(map[string]Value)
	for _, k := range dsk.order {
		if v, ok := GetCommandLinePref(k); ok {
			cmdline[k] = v
		}
	}

	// disk values are applied first so that values on the command line
	// override anything set indirectly by a hook
	for _, k := range dsk.order {
		if _, ok := cmdline[k]; ok {
			continue
		}
		if v, ok := entries[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return errors.New(errors.InvalidInput, fmt.Sprintf("prefs: %s", k), err)
			}
		}
	}

	for _, k := range dsk.order {
		if v, ok := cmdline[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return errors.New(errors.InvalidInput, fmt.Sprintf("prefs: %s", k), err)
			}
		}
	}

	return nil
}
