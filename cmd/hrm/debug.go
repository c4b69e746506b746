package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"

	"github.com/ezrec/hrm/cpu"
	"github.com/ezrec/hrm/emulator"
)

const debugHelp = `step [N]   execute N instructions (default 1)
run        run until halted
regs       show register, tapes and instruction pointer
mem        show memory cells
dump       dump the full machine state
list       list the linked program
quit       leave the debugger
`

// debug runs an interactive stepping session on the emulator.
func debug(emu *emulator.Emulator) (err error) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	alert := color.New(color.FgRed, color.Bold)

	for {
		prompt := fmt.Sprintf("hrm %03d> ", emu.Cpu.Ip)
		if emu.Halt().Halted() {
			prompt = fmt.Sprintf("hrm (%v)> ", emu.Halt())
		}

		var text string
		text, err = line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		words := strings.Fields(text)
		if len(words) == 0 {
			words = []string{"step"}
		} else {
			line.AppendHistory(text)
		}

		switch words[0] {
		case "s", "step":
			count := 1
			if len(words) > 1 {
				count, err = strconv.Atoi(words[1])
				if err != nil || count < 1 {
					alert.Printf("step: invalid count %q\n", words[1])
					err = nil
					continue
				}
			}
			for range count {
				if ins, ok := emu.Instruction(); ok {
					fmt.Printf("%03d: %v\n", emu.Cpu.Ip, ins)
				}
				done, terr := emu.Tick()
				if terr != nil {
					alert.Println(terr)
				}
				if done {
					break
				}
			}
		case "r", "run":
			terr := emu.Run()
			if terr != nil {
				alert.Println(terr)
			}
		case "regs":
			fmt.Print(emu.Cpu.String())
		case "mem":
			showMemory(os.Stdout, emu.Cpu)
		case "dump":
			spew.Fdump(os.Stdout, emu.State())
		case "l", "list":
			showCode(os.Stdout, emu)
		case "q", "quit":
			return
		case "h", "help", "?":
			fmt.Print(debugHelp)
		default:
			alert.Printf("%v: unknown command\n", words[0])
		}
	}
}

// showMemory renders the memory cells as a table.
func showMemory(w io.Writer, c *cpu.Cpu) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Cell", "Value"})
	for index, value := range c.Memory {
		table.Append([]string{strconv.Itoa(index), value.String()})
	}
	table.Render()
}

// showCode lists the linked program, marking the instruction pointer.
func showCode(w io.Writer, emu *emulator.Emulator) {
	for ip, ins := range emu.Code() {
		mark := " "
		if ip == emu.Cpu.Ip {
			mark = ">"
		}
		fmt.Fprintf(w, "%v %03d: %-20v ; line %d\n", mark, ip, ins, emu.Program.LineNo(ip))
	}
}
