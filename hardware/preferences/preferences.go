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

package preferences

import (
	"math/rand"
	"time"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
	"github.com/shyisa/shymem/hardware/memory/vram"
	"github.com/shyisa/shymem/prefs"
	"github.com/spf13/afero"
)

// Default values for the memory preferences.
const (
	DefaultRAM        = 0x100000
	DefaultResolution = 256
)

// the largest amount of video memory that fits in the video area.
const maxVideo = int(memorymap.MemtopVideo-memorymap.OriginVideo) + 1

// the largest amount of RAM that fits in the address space.
const maxRAM = int64(memorymap.Memtop-memorymap.OriginRAM) + 1

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// size of main memory and video memory in words
	RAM   prefs.Int
	Video prefs.Int

	// the resolution of the screen. the screen is square and video memory
	// is resized to fit
	Resolution prefs.Int

	// initialise memory to unknown state after reset
	RandomState prefs.Bool

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the named file, if it exists.
func NewPreferences(fsys afero.Fs, path string) (*Preferences, error) {
	p := &Preferences{}

	p.Reseed(0)

	p.RAM.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || int64(v.(int)) > maxRAM {
			return errors.Errorf(errors.InvalidInput, "memory.ram: %d words does not fit in the address space", v.(int))
		}
		return nil
	})

	p.Video.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > maxVideo {
			return errors.Errorf(errors.InvalidInput, "memory.video: %d words does not fit in the video area", v.(int))
		}
		return nil
	})

	p.Resolution.SetHookPre(func(v prefs.Value) error {
		res := v.(int)
		if res < 0 || res > 1024 || vram.WordsForResolution(res) > maxVideo {
			return errors.Errorf(errors.InvalidInput, "memory.resolution: %d is too large", res)
		}
		return nil
	})
	p.Resolution.SetHookPost(func(v prefs.Value) error {
		return p.Video.Set(vram.WordsForResolution(v.(int)))
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(fsys, path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.ram", &p.RAM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.resolution", &p.Resolution)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.video", &p.Video)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	// default values are known to be valid so errors can be ignored
	_ = p.RAM.Set(DefaultRAM)
	_ = p.Resolution.Set(DefaultResolution)
	_ = p.RandomState.Set(false)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
