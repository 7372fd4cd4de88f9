// This file is part of Mule-GB.
//
// Mule-GB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mule-GB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mule-GB.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Ragnaroek/mule-gb/cartridge"
	"github.com/Ragnaroek/mule-gb/cartridgeloader"
	"github.com/Ragnaroek/mule-gb/catalog"
	"github.com/Ragnaroek/mule-gb/dump"
	"github.com/Ragnaroek/mule-gb/logger"
	"github.com/Ragnaroek/mule-gb/modalflag"
	"github.com/Ragnaroek/mule-gb/performance"
	"github.com/Ragnaroek/mule-gb/scan"
	"github.com/Ragnaroek/mule-gb/statsview"
	"github.com/Ragnaroek/mule-gb/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("INSPECT", "SCAN", "DB", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "INSPECT":
		err = inspect(md)

	case "SCAN":
		err = scanDir(md)

	case "DB":
		err = db(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", dump.FormatJSON, "output format: json, sexpr, dot")
	banks := md.AddBool("banks", false, "include program bank summaries in the output")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge file required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		if err := cartload.Load(); err != nil {
			return err
		}

		cart, err := cartridge.Decode(cartload.Data)
		if err != nil {
			return err
		}

		attr := dump.WriteAttr{
			Format: *format,
			Banks:  *banks,
		}

		if err := dump.Write(md.Output, cart, attr); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func scanDir(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("stats", false, "launch statistics server")
	fails := md.AddBool("fails", false, "only print the files that fail to decode")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("directory required for %s mode", md)
	case 1:
		// a ctrl-c ends the scan cleanly, with the tally so far
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)

		attr := scan.Attr{
			FailuresOnly: *fails,
			Quit:         intChan,
		}

		runScan := func() error {
			return scan.Scan(md.Output, md.GetArg(0), attr)
		}

		// if profile generation has been requested then pass the runScan()
		// function prepared above through the ProfileCPU() command
		if *profile {
			err := performance.ProfileCPU("scan.cpu.profile", runScan)
			if err != nil {
				return err
			}
			err = performance.ProfileMem("scan.mem.profile")
			if err != nil {
				return err
			}
		} else {
			err := runScan()
			if err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func db(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("LIST", "ADD", "DELETE", "VERIFY")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "LIST":
		md.NewMode()

		// no additional arguments

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := catalog.List(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "ADD":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("cartridge file required for %s mode", md)
		case 1:
			err := catalog.Add(md.Output, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("entries can only be added one at a time")
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless the "yes" flag has been set
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := catalog.Delete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "VERIFY":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := catalog.Verify(md.Output, *verbose)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, vers)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
