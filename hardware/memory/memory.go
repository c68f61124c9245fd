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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory/bus"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
	"github.com/shyisa/shymem/hardware/memory/ports"
	"github.com/shyisa/shymem/hardware/memory/ram"
	"github.com/shyisa/shymem/hardware/memory/registers"
	"github.com/shyisa/shymem/hardware/memory/vram"
	"github.com/shyisa/shymem/logger"
)

// Memory is the address space of the machine.
type Memory struct {
	regs  *registers.File
	ram   *ram.RAM
	ports *ports.Ports
	vram  *vram.VRAM

	// the last address of video memory. if there is no video memory then
	// videoEnd is OriginVideo-1
	videoEnd uint32
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Sizes are in words.
//
// A configuration that would place the end of video memory beyond
// memorymap.MemtopVideo, or the end of RAM beyond memorymap.Memtop, is an
// InvalidInput error and no Memory is returned.
func NewMemory(ramWords int, videoWords int) (*Memory, error) {
	if ramWords < 0 {
		return nil, errors.Errorf(errors.InvalidInput, "ram size cannot be negative (%d)", ramWords)
	}
	if videoWords < 0 {
		return nil, errors.Errorf(errors.InvalidInput, "video size cannot be negative (%d)", videoWords)
	}

	ramEnd := uint64(memorymap.OriginRAM) + uint64(ramWords) - 1
	if ramEnd > uint64(memorymap.Memtop) {
		return nil, errors.Errorf(errors.InvalidInput, "ram size too large: end=0x%08x exceeds max=0x%08x", ramEnd, memorymap.Memtop)
	}

	videoEnd := uint64(memorymap.OriginVideo) + uint64(videoWords) - 1
	if videoEnd > uint64(memorymap.MemtopVideo) {
		return nil, errors.Errorf(errors.InvalidInput, "video size too large: end=0x%08x exceeds max=0x%08x", videoEnd, memorymap.MemtopVideo)
	}

	mem := &Memory{
		regs:     registers.NewFile(),
		ram:      ram.NewRAM(ramWords),
		ports:    ports.NewPorts(),
		vram:     vram.NewVRAM(videoWords),
		videoEnd: uint32(videoEnd),
	}

	logger.Logf(logger.Allow, "memory", "ram %d words, video %d words (end 0x%08x)", ramWords, videoWords, mem.videoEnd)

	return mem, nil
}

// Snapshot creates a copy of the address space in its current state.
func (mem *Memory) Snapshot() *Memory {
	return &Memory{
		regs:     mem.regs.Snapshot(),
		ram:      mem.ram.Snapshot(),
		ports:    mem.ports.Snapshot(),
		vram:     mem.vram.Snapshot(),
		videoEnd: mem.videoEnd,
	}
}

// Reset every device to zero.
func (mem *Memory) Reset() {
	mem.regs.Reset()
	mem.ram.Reset()
	mem.ports.Reset()
	mem.vram.Reset()
}

// Registers returns the register file.
func (mem *Memory) Registers() *registers.File {
	return mem.regs
}

// RAM returns the main memory bank.
func (mem *Memory) RAM() *ram.RAM {
	return mem.ram
}

// Ports returns the IO port device.
func (mem *Memory) Ports() *ports.Ports {
	return mem.ports
}

// VRAM returns the video memory device.
func (mem *Memory) VRAM() *vram.VRAM {
	return mem.vram
}

// VideoEnd returns the address of the last word of video memory.
func (mem *Memory) VideoEnd() memorymap.Address {
	return memorymap.NewAddress(mem.videoEnd)
}

// device returns the device for the address along with the device-local
// offset. Addresses with no device return an error.
func (mem *Memory) device(address memorymap.Address, write bool) (bus.Device, int, error) {
	offset, area := memorymap.MapAddress(address)

	var dev bus.Device

	switch area {
	case memorymap.Register:
		dev = mem.regs
	case memorymap.Ports:
		dev = mem.ports
	case memorymap.Video:
		dev = mem.vram
	case memorymap.RAM:
		dev = mem.ram
	case memorymap.Opcode:
		if write {
			return nil, 0, errors.Errorf(errors.MemoryError, "address %s: opcode space is execute-only", address)
		}
		return nil, 0, errors.Errorf(errors.MemoryError, "address %s: opcode space is not readable", address)
	default:
		return nil, 0, errors.Errorf(errors.MemoryError, "address %s: %s area is not mapped", address, area)
	}

	if err := bus.CheckAreaOffset(dev, offset); err != nil {
		return nil, 0, errors.New(errors.MemoryError, fmt.Sprintf("address %s", address), err)
	}

	return dev, int(offset), nil
}

// Read the word at the address.
func (mem *Memory) Read(address memorymap.Address) (bus.Word, error) {
	dev, offset, err := mem.device(address, false)
	if err != nil {
		return 0, err
	}

	data, err := dev.Read(offset)
	if err != nil {
		return 0, mem.wrap(address, dev, err)
	}

	return data, nil
}

// Write the word to the address.
func (mem *Memory) Write(address memorymap.Address, data bus.Word) error {
	dev, offset, err := mem.device(address, true)
	if err != nil {
		return err
	}

	if err := dev.Write(offset, data); err != nil {
		return mem.wrap(address, dev, err)
	}

	return nil
}

// the RAM device already quotes the bus address in its errors
func (mem *Memory) wrap(address memorymap.Address, dev bus.Device, err error) error {
	if dev == mem.ram {
		return err
	}
	return errors.New(errors.MemoryError, fmt.Sprintf("address %s", address), err)
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address memorymap.Address) (bus.Word, error) {
	return mem.Read(address)
}

// Poke implements the bus.DebuggerBus interface.
func (mem *Memory) Poke(address memorymap.Address, data bus.Word) error {
	return mem.Write(address, data)
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(memorymap.Summary())
	s.WriteString(fmt.Sprintf("video: %d words (end %s)\n", mem.vram.Len(), mem.VideoEnd()))
	s.WriteString(fmt.Sprintf("ram: %d words\n", mem.ram.Len()))
	return s.String()
}

// Visualise writes a graphviz rendering of the register file and the IO
// ports to the writer. The RAM and video devices are too large to be
// usefully rendered and are omitted.
func (mem *Memory) Visualise(w io.Writer) {
	memviz.Map(w, mem.regs, mem.ports)
}
