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

package image_test

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory"
	"github.com/shyisa/shymem/hardware/memory/image"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
	"github.com/shyisa/shymem/test"
	"github.com/spf13/afero"
)

func newMemory(t *testing.T, ramWords int) *memory.Memory {
	t.Helper()
	mem, err := memory.NewMemory(ramWords, 256)
	test.DemandSuccess(t, err)
	return mem
}

func TestEncode(t *testing.T) {
	mem := newMemory(t, 4)
	test.ExpectSuccess(t, mem.Write(memorymap.RAMAddress(0), 0x12345678))
	test.ExpectSuccess(t, mem.Write(memorymap.RAMAddress(3), 0xdeadbeef))

	// registers and video are not part of the image
	test.ExpectSuccess(t, mem.Write(memorymap.NewAddress(0x10), 0xffffffff))
	test.ExpectSuccess(t, mem.Write(memorymap.NewAddress(0x100), 0xffffffff))

	data, err := image.Encode(mem)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(data), 16)

	expected := []byte{
		0x12, 0x34, 0x56, 0x78,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xde, 0xad, 0xbe, 0xef,
	}
	for i := range expected {
		test.ExpectEquality(t, data[i], expected[i], i)
	}
}

func TestDecode(t *testing.T) {
	mem := newMemory(t, 4)

	err := image.Decode(mem, []byte{0x01, 0x02, 0x03, 0x04, 0xa0, 0xb0, 0xc0, 0xd0})
	test.DemandSuccess(t, err)

	v, _ := mem.Read(memorymap.RAMAddress(0))
	test.ExpectEquality(t, v, 0x01020304)
	v, _ = mem.Read(memorymap.RAMAddress(1))
	test.ExpectEquality(t, v, 0xa0b0c0d0)
	v, _ = mem.Read(memorymap.RAMAddress(2))
	test.ExpectEquality(t, v, 0)

	// an empty image is a valid image
	test.ExpectSuccess(t, image.Decode(mem, []byte{}))
}

func TestDecodeRejected(t *testing.T) {
	mem := newMemory(t, 2)
	test.ExpectSuccess(t, mem.Write(memorymap.RAMAddress(0), 0x11111111))

	// not a whole number of words
	err := image.Decode(mem, []byte{0x00, 0x00, 0x00, 0x00, 0x01})
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidInput))

	// larger than RAM
	err = image.Decode(mem, make([]byte, 12))
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidInput))

	// memory is untouched by a rejected image
	v, _ := mem.Read(memorymap.RAMAddress(0))
	test.ExpectEquality(t, v, 0x11111111)
}

func TestRoundTrip(t *testing.T) {
	mem := newMemory(t, 1024)
	for i := 0; i < mem.RAM().Len(); i++ {
		test.DemandSuccess(t, mem.Write(memorymap.RAMAddress(i), uint32(i)*0x01010101^0xa5a5a5a5))
	}

	data, err := image.Encode(mem)
	test.DemandSuccess(t, err)

	fresh := newMemory(t, 1024)
	test.DemandSuccess(t, image.Decode(fresh, data))

	for i := 0; i < mem.RAM().Len(); i++ {
		test.ExpectEquality(t, fresh.RAM().Data()[i], mem.RAM().Data()[i], i)
	}
}

func TestSaveLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()

	mem := newMemory(t, 16)
	test.ExpectSuccess(t, mem.Write(memorymap.RAMAddress(15), 0xcafef00d))
	test.DemandSuccess(t, image.Save(fsys, mem, "/images/test.img"))

	info, err := fsys.Stat("/images/test.img")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(64))

	fresh := newMemory(t, 16)
	test.DemandSuccess(t, image.Load(fsys, fresh, "/images/test.img"))
	v, _ := fresh.Read(memorymap.RAMAddress(15))
	test.ExpectEquality(t, v, 0xcafef00d)
}

func TestLoadMissing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mem := newMemory(t, 16)

	err := image.Load(fsys, mem, "missing.img")
	test.ExpectSuccess(t, errors.Is(err, errors.ResourceNotFound))
	test.ExpectSuccess(t, stderrors.Is(err, fs.ErrNotExist))
}

func TestSaveFailure(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	mem := newMemory(t, 16)

	err := image.Save(fsys, mem, "test.img")
	test.ExpectSuccess(t, errors.Is(err, errors.IOError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "save: test.img"))
}

func TestLoadBadImage(t *testing.T) {
	fsys := afero.NewMemMapFs()
	test.DemandSuccess(t, afero.WriteFile(fsys, "bad.img", []byte{1, 2, 3}, 0o644))

	mem := newMemory(t, 16)
	err := image.Load(fsys, mem, "bad.img")
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidInput))
}
