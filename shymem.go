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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware"
	"github.com/shyisa/shymem/hardware/preferences"
	"github.com/shyisa/shymem/logger"
	"github.com/shyisa/shymem/modalflag"
	"github.com/shyisa/shymem/paths"
	"github.com/shyisa/shymem/prefs"
	"github.com/shyisa/shymem/version"
	"github.com/spf13/afero"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md, afero.NewOsFs()))
}

// launch the mode selected on the command line. the return value is the exit
// status of the program.
func launch(md *modalflag.Modes, fsys afero.Fs) int {
	md.NewMode()
	prefsString := md.AddString("prefs", "", "preferences for this session. eg. \"memory.ram::1024; memory.video::256\"")
	log := md.AddBool("log", false, "echo log to stdout")
	md.AddSubModes("SUMMARY", "DUMP", "VISUALISE", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	if *prefsString != "" {
		prefs.PushCommandLineStack(*prefsString)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(md.Output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	switch md.Mode() {
	case "SUMMARY":
		err = summary(md, fsys)
	case "DUMP":
		err = dump(md, fsys)
	case "VISUALISE":
		err = visualise(md, fsys)
	case "PREFS":
		err = showPrefs(md, fsys)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func loadPreferences(fsys afero.Fs) (*preferences.Preferences, error) {
	pth, err := paths.ResourcePath(fsys, prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return preferences.NewPreferences(fsys, pth)
}

// create a machine and load the image named by the first remaining argument,
// if there is one.
func newMachine(md *modalflag.Modes, fsys afero.Fs) (*hardware.Machine, error) {
	p, err := loadPreferences(fsys)
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(p)
	if err != nil {
		return nil, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if err := m.LoadImage(fsys, md.GetArg(0)); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf(errors.InvalidInput, "too many arguments for %s mode", md)
	}

	return m, nil
}

func summary(md *modalflag.Modes, fsys afero.Fs) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md, fsys)
	if err != nil {
		return err
	}

	_, err = io.WriteString(md.Output, m.String())
	return err
}

func dump(md *modalflag.Modes, fsys afero.Fs) error {
	md.NewMode()
	regs := md.AddBool("regs", false, "dump register file")
	ports := md.AddBool("ports", false, "dump IO ports")
	video := md.AddBool("video", false, "dump video memory")
	ram := md.AddBool("ram", true, "dump main memory")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md, fsys)
	if err != nil {
		return err
	}

	if *regs {
		fmt.Fprintln(md.Output, m.Mem.Registers())
	}
	if *ports {
		fmt.Fprint(md.Output, m.Mem.Ports())
	}
	if *video {
		fmt.Fprint(md.Output, m.Mem.VRAM())
	}
	if *ram {
		fmt.Fprint(md.Output, m.Mem.RAM())
	}

	return nil
}

func visualise(md *modalflag.Modes, fsys afero.Fs) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md, fsys)
	if err != nil {
		return err
	}

	m.Mem.Visualise(md.Output)

	return nil
}

func showPrefs(md *modalflag.Modes, fsys afero.Fs) error {
	md.NewMode()
	save := md.AddBool("save", false, "save preferences to disk")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	prf, err := loadPreferences(fsys)
	if err != nil {
		return err
	}

	if *save {
		if err := prf.Save(); err != nil {
			return err
		}
	}

	fmt.Fprint(md.Output, prf)

	return nil
}
