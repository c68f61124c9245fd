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

package ports

import (
	"github.com/shyisa/shymem/hardware/memory/bus"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
	"github.com/shyisa/shymem/hardware/memory/ram"
)

// NumPorts is the number of words in the IO port device.
const NumPorts = 0x90

// Port addresses of the keyboard.
const (
	KeyUp    = 0x70
	KeyDown  = 0x71
	KeyLeft  = 0x72
	KeyRight = 0x73
	KeyEnter = 0x74
	KeyEsc   = 0x75
)

// The ASCII output range.
const (
	ASCIIStart = 0x80
	ASCIIEnd   = 0xff
)

// PortAddress returns the bus address of the port at offset.
func PortAddress(offset int) memorymap.Address {
	return memorymap.NewAddress(memorymap.OriginPorts + uint32(offset))
}

// PortOffset returns the device offset of the port at address. The boolean
// is false if the address is not in the Ports area.
func PortOffset(address memorymap.Address) (int, bool) {
	offset, area := memorymap.MapAddress(address)
	if area != memorymap.Ports {
		return 0, false
	}
	return int(offset), true
}

// ASCIIPort returns the bus address of the ASCII output port for the
// character.
func ASCIIPort(r byte) memorymap.Address {
	return memorymap.NewAddress(ASCIIStart + uint32(r&0x7f))
}

// Ports is the IO port device.
type Ports struct {
	ports [NumPorts]bus.Word
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{}
}

// Snapshot creates a copy of the ports in their current state.
func (p *Ports) Snapshot() *Ports {
	n := *p
	return &n
}

// Reset sets every port to zero.
func (p *Ports) Reset() {
	p.ports = [NumPorts]bus.Word{}
}

// Label implements the bus.Device interface.
func (p *Ports) Label() string {
	return "ports"
}

// Len implements the bus.Device interface.
func (p *Ports) Len() int {
	return len(p.ports)
}

// Read implements the bus.Device interface.
func (p *Ports) Read(offset int) (bus.Word, error) {
	if err := bus.CheckBounds(p, offset); err != nil {
		return 0, err
	}
	return p.ports[offset], nil
}

// Write implements the bus.Device interface.
func (p *Ports) Write(offset int, data bus.Word) error {
	if err := bus.CheckBounds(p, offset); err != nil {
		return err
	}
	p.ports[offset] = data
	return nil
}

func (p *Ports) String() string {
	return ram.Dump(p.ports[:], memorymap.OriginPorts)
}
