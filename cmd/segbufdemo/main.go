// Command segbufdemo is an interactive shell for poking at a segbuf.Buffer
// from the terminal: add content, drain it, search it, watch change
// events fire, all without writing a test.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tuannm99/segbuf"
)

var logDebugPrefix = "segbufdemo: "

func printHelp() {
	fmt.Println(`meta commands:
  \add <text>          append text as owned content
  \ro <text>           append text as read-only, zero-copy content
  \remove <n>          drain and print the first n bytes
  \peek <n>            print the first n bytes without draining
  \search <needle>     find needle in the whole buffer
  \contig <n>          make the first n bytes contiguous, print the slice
  \len                 print content length and space length
  \coalesce start|end  begin/end a coalescing section
  \q | quit | exit     quit
  \help                show this help`)
}

func main() {
	var (
		histPath = flag.String("history", defaultHistoryPath(), "history file path")
	)
	flag.Parse()

	slog.SetLogLoggerLevel(slog.LevelDebug)

	buf := segbuf.NewBuffer()
	events := 0
	buf.SetChangedCB(func(origLen, added, deleted int) {
		events++
		slog.Debug(logDebugPrefix+"change", "origLen", origLen, "added", added, "deleted", deleted, "seq", events)
	})

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "segbuf> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryFile:     *histPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	fmt.Println("segbuf demo shell — type \\help for help")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println("^C")
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if !strings.HasPrefix(line, "\\") {
			fmt.Println("unrecognized input, type \\help for help")
			continue
		}

		fields := strings.SplitN(line, " ", 2)
		cmd := fields[0]
		var arg string
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch cmd {
		case "\\help":
			printHelp()
		case "\\q":
			return
		case "\\add":
			if err := buf.Add([]byte(arg)); err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("added %d bytes, content_len=%d\n", len(arg), buf.GetContentLen())
		case "\\ro":
			buf.AddReadOnly([]byte(arg))
			fmt.Printf("added %d read-only bytes, content_len=%d\n", len(arg), buf.GetContentLen())
		case "\\remove":
			n, perr := strconv.Atoi(arg)
			if perr != nil {
				fmt.Println("usage: \\remove <n>")
				continue
			}
			fmt.Printf("%q\n", buf.RemoveString(n))
		case "\\peek":
			n, perr := strconv.Atoi(arg)
			if perr != nil {
				fmt.Println("usage: \\peek <n>")
				continue
			}
			fmt.Printf("%q\n", buf.PeekString(n))
		case "\\search":
			pos, found := buf.Search(0, buf.GetContentLen(), []byte(arg))
			if !found {
				fmt.Println("not found")
				continue
			}
			fmt.Printf("found at offset %d\n", pos)
		case "\\contig":
			n, perr := strconv.Atoi(arg)
			if perr != nil {
				fmt.Println("usage: \\contig <n>")
				continue
			}
			out := buf.MakeContiguous(n)
			fmt.Printf("%q\n", out)
		case "\\len":
			fmt.Printf("content_len=%d space_len=%d\n", buf.GetContentLen(), buf.GetSpaceLen())
		case "\\coalesce":
			switch arg {
			case "start":
				buf.BeginCoalescing()
				fmt.Println("coalescing started")
			case "end":
				buf.EndCoalescing()
				fmt.Println("coalescing ended")
			default:
				fmt.Println("usage: \\coalesce start|end")
			}
		default:
			fmt.Printf("unknown command: %s\n", cmd)
		}
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".segbufdemo_history"
	}
	return home + "/.segbufdemo_history"
}
