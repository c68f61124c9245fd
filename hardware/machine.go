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

package hardware

import (
	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory"
	"github.com/shyisa/shymem/hardware/memory/image"
	"github.com/shyisa/shymem/hardware/preferences"
	"github.com/shyisa/shymem/logger"
	"github.com/spf13/afero"
)

// Machine is the hardware of the simulated machine.
type Machine struct {
	Prefs *preferences.Preferences
	Mem   *memory.Memory
}

// NewMachine creates a new Machine with memory sized according to the
// preferences.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		return nil, errors.Errorf(errors.InvalidInput, "machine: no preferences")
	}

	m := &Machine{Prefs: prefs}

	var err error
	m.Mem, err = memory.NewMemory(prefs.RAM.Get().(int), prefs.Video.Get().(int))
	if err != nil {
		return nil, errors.New(errors.InvalidInput, "machine", err)
	}

	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	return m.Mem.String()
}

// Reset the machine. Registers and ports are set to zero. Main memory and
// video memory are set to zero or to random values, depending on the
// hardware.randstate preference.
func (m *Machine) Reset() {
	m.Mem.Reset()

	if m.Prefs.RandomState.Get().(bool) {
		for _, d := range [][]uint32{m.Mem.RAM().Data(), m.Mem.VRAM().Data()} {
			for i := range d {
				d[i] = m.Prefs.RandSrc.Uint32()
			}
		}
	}
}

// LoadImage loads the memory image in the named file. Main memory is cleared
// before the image is loaded. The other devices are unchanged.
//
// The image is loaded into a copy of memory which replaces the machine's
// memory only if the load succeeds.
func (m *Machine) LoadImage(fsys afero.Fs, path string) error {
	fresh := m.Mem.Snapshot()
	fresh.RAM().Reset()

	if err := image.Load(fsys, fresh, path); err != nil {
		logger.Logf(logger.Allow, "machine", "image not loaded: %v", err)
		return err
	}

	m.Mem = fresh

	return nil
}

// SaveImage saves the contents of main memory to the named file.
func (m *Machine) SaveImage(fsys afero.Fs, path string) error {
	return image.Save(fsys, m.Mem, path)
}
