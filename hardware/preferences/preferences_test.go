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

package preferences_test

import (
	"testing"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/preferences"
	"github.com/shyisa/shymem/prefs"
	"github.com/shyisa/shymem/test"
	"github.com/spf13/afero"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences(afero.NewMemMapFs(), prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.RAM.Get().(int), preferences.DefaultRAM)
	test.ExpectEquality(t, p.Resolution.Get().(int), preferences.DefaultResolution)
	test.ExpectEquality(t, p.Video.Get().(int), 65536)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferences(afero.NewMemMapFs(), prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)

	err = p.Video.Set(0x100001)
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidInput))
	test.ExpectSuccess(t, p.Video.Set(0x100000))

	err = p.RAM.Set(-1)
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidInput))

	err = p.Resolution.Set(1025)
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidInput))

	// setting the resolution resizes video memory
	test.ExpectSuccess(t, p.Resolution.Set(16))
	test.ExpectEquality(t, p.Video.Get().(int), 256)
}

func TestSaveLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()

	p, err := preferences.NewPreferences(fsys, prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.RAM.Set(1024))
	test.ExpectSuccess(t, p.Resolution.Set(32))
	test.DemandSuccess(t, p.Save())

	p, err = preferences.NewPreferences(fsys, prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RAM.Get().(int), 1024)
	test.ExpectEquality(t, p.Video.Get().(int), 1024)
}

func TestCommandLine(t *testing.T) {
	fsys := afero.NewMemMapFs()

	prefs.PushCommandLineStack("memory.ram::0x400; memory.video::256")
	p, err := preferences.NewPreferences(fsys, prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// an explicit video size takes precedence over the size implied by the
	// resolution
	test.ExpectEquality(t, p.RAM.Get().(int), 1024)
	test.ExpectEquality(t, p.Video.Get().(int), 256)

	// invalid values on the command line are an error
	prefs.PushCommandLineStack("memory.video::0x200000")
	_, err = preferences.NewPreferences(fsys, prefs.DefaultPrefsFile)
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidInput))
	prefs.PopCommandLineStack()

	// a resolution on the command line overrides the video size saved in
	// the preferences file
	p, err = preferences.NewPreferences(fsys, prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Save())

	prefs.PushCommandLineStack("memory.resolution::128")
	p, err = preferences.NewPreferences(fsys, prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, p.Resolution.Get().(int), 128)
	test.ExpectEquality(t, p.Video.Get().(int), 128*128)

	// an explicit video size on the command line still wins over the
	// resolution
	prefs.PushCommandLineStack("memory.resolution::128; memory.video::256")
	p, err = preferences.NewPreferences(fsys, prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, p.Video.Get().(int), 256)
}
