// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/ezrec/hrm/cpu"
	"github.com/ezrec/hrm/emulator"
	hrmio "github.com/ezrec/hrm/io"
	"github.com/ezrec/hrm/translate"
)

func main() {
	var compile string
	var input string
	var output string
	var trace string
	var ticks int
	var step bool
	var verbose bool
	var lang string

	flag.StringVar(&compile, "c", "", "Program to run (.json, or assembler text)")
	flag.StringVar(&input, "i", "", "Machine configuration (.json, .toml, or .yaml)")
	flag.StringVar(&output, "o", "", "Dump final state as JSON ('-' for stdout)")
	flag.StringVar(&trace, "t", "", "Trace every tick as JSON lines")
	flag.IntVar(&ticks, "n", 1000000, "Tick limit, 0 for none")
	flag.BoolVar(&step, "s", false, "Interactive stepping debugger")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "L", "", "Message locale (default: from the host)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLocale(lang)
	}

	if len(compile) == 0 {
		log.Fatalf("%v: -c program required", os.Args[0])
	}

	config := &hrmio.Config{Size: emulator.MEMORY_SIZE}
	if len(input) != 0 {
		var err error
		config, err = hrmio.LoadConfig(input)
		if err != nil {
			log.Fatal(err)
		}
	}

	emu := emulator.NewEmulator(uint(config.Size))
	emu.Verbose = verbose
	emu.MaxTicks = ticks

	asm := &cpu.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := hrmio.LoadProgram(compile, asm)
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Load(prog, config.Inbox, config.Memory)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	finishTrace := func() error { return nil }
	if len(trace) != 0 {
		var tw *hrmio.TraceWriter
		tw, finishTrace, err = openTrace(trace)
		if err != nil {
			log.Fatalf("%v: %v", trace, err)
		}
		emu.Trace = tw.Trace
	}

	if step {
		err = debug(emu)
	} else {
		// Runtime errors are reported with the halt state below.
		_ = emu.Run()
	}

	// Tracing is over; close the trace before any exit path.
	if terr := finishTrace(); terr != nil {
		log.Printf("%v: %v", trace, terr)
	}

	if err != nil {
		log.Fatal(err)
	}

	for _, value := range emu.Cpu.Outbox.Data {
		fmt.Println(value)
	}

	report(emu)

	if len(output) != 0 {
		err = dump(output, emu.State())
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if emu.Halt() == emulator.HALT_ERROR {
		os.Exit(1)
	}
}

// openTrace creates a JSON-lines trace file. finish closes the file, and
// returns the first trace write error or the close error.
func openTrace(path string) (tw *hrmio.TraceWriter, finish func() error, err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	tw = hrmio.NewTraceWriter(ouf)
	finish = func() error {
		return errors.Join(tw.Err, ouf.Close())
	}

	return
}

// report describes the halt state on stderr.
func report(emu *emulator.Emulator) {
	switch emu.Halt() {
	case emulator.HALT_ERROR:
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", emu.Err())
	case emulator.HALT_NONE:
		color.New(color.FgYellow).Fprintf(os.Stderr, "stopped at ip %d after %d ticks\n", emu.Cpu.Ip, emu.Cpu.Ticks)
	default:
		color.New(color.FgGreen).Fprintf(os.Stderr, "halt: %v after %d ticks\n", emu.Halt(), emu.Cpu.Ticks)
	}
}

// dump writes the state to a file, or stdout for "-".
func dump(path string, state emulator.State) (err error) {
	if path == "-" {
		return hrmio.WriteState(os.Stdout, state)
	}

	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = hrmio.WriteState(ouf, state)
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}

	return
}
