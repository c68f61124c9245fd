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

package bus_test

import (
	"testing"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory/bus"
	"github.com/shyisa/shymem/test"
)

type device struct {
	data []bus.Word
}

func (d *device) Label() string { return "test" }

func (d *device) Read(offset int) (bus.Word, error) {
	if err := bus.CheckBounds(d, offset); err != nil {
		return 0, err
	}
	return d.data[offset], nil
}

func (d *device) Write(offset int, data bus.Word) error {
	if err := bus.CheckBounds(d, offset); err != nil {
		return err
	}
	d.data[offset] = data
	return nil
}

func (d *device) Len() int { return len(d.data) }

func TestCheckBounds(t *testing.T) {
	d := &device{data: make([]bus.Word, 4)}
	var _ bus.Device = d

	test.ExpectSuccess(t, bus.CheckBounds(d, 0))
	test.ExpectSuccess(t, bus.CheckBounds(d, 3))

	err := bus.CheckBounds(d, 4)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.MemoryError))
	test.ExpectEquality(t, err.Error(), "memory error: test offset 0x4 out of bounds (len=0x4)")

	test.ExpectFailure(t, bus.CheckBounds(d, -1))
	test.ExpectFailure(t, d.Write(4, 0xff))

	// offsets taken from the top of the address space
	test.ExpectSuccess(t, bus.CheckAreaOffset(d, 3))
	err = bus.CheckAreaOffset(d, 0xffeffeff)
	test.ExpectSuccess(t, errors.Is(err, errors.MemoryError))
	test.ExpectEquality(t, err.Error(), "memory error: test offset 0xffeffeff out of bounds (len=0x4)")
}
