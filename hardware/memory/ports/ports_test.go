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

package ports_test

import (
	"testing"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory/bus"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
	"github.com/shyisa/shymem/hardware/memory/ports"
	"github.com/shyisa/shymem/test"
)

func TestReadWrite(t *testing.T) {
	p := ports.NewPorts()
	var _ bus.Device = p

	test.ExpectEquality(t, p.Len(), 144)

	test.ExpectSuccess(t, p.Write(0x10, 0x42))
	v, err := p.Read(0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)

	test.ExpectSuccess(t, p.Write(0x8f, 0xffffffff))
	v, err = p.Read(0x8f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xffffffff)

	_, err = p.Read(0x90)
	test.ExpectSuccess(t, errors.Is(err, errors.MemoryError))
	test.ExpectEquality(t, err.Error(), "memory error: ports offset 0x90 out of bounds (len=0x90)")
	test.ExpectFailure(t, p.Write(0x90, 0))
}

func TestAddressing(t *testing.T) {
	test.ExpectEquality(t, ports.PortAddress(0).Raw(), ports.KeyUp)
	test.ExpectEquality(t, ports.PortAddress(0x8f).Raw(), ports.ASCIIEnd)

	off, ok := ports.PortOffset(memorymap.NewAddress(ports.KeyEsc))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, off, 5)

	off, ok = ports.PortOffset(memorymap.NewAddress(ports.ASCIIStart))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, off, 0x10)

	_, ok = ports.PortOffset(memorymap.NewAddress(0x6f))
	test.ExpectFailure(t, ok)
	_, ok = ports.PortOffset(memorymap.NewAddress(0x100))
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, ports.ASCIIPort('A').Raw(), 0xc1)
	test.ExpectEquality(t, ports.ASCIIPort(0x00).Raw(), ports.ASCIIStart)
	test.ExpectEquality(t, ports.ASCIIPort(0xff).Raw(), ports.ASCIIEnd)

	// every ASCII port is in the Ports area
	for c := 0; c < 256; c++ {
		test.ExpectSuccess(t, memorymap.IsArea(ports.ASCIIPort(byte(c)), memorymap.Ports))
	}
}

func TestSnapshot(t *testing.T) {
	p := ports.NewPorts()
	test.ExpectSuccess(t, p.Write(ports.KeyEnter-ports.KeyUp, 1))

	snap := p.Snapshot()
	p.Reset()

	v, _ := snap.Read(4)
	test.ExpectEquality(t, v, 1)
	v, _ = p.Read(4)
	test.ExpectEquality(t, v, 0)
}
