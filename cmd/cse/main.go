package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	csound "github.com/ndcroos/csound-expression"
)

const (
	appName     = "cse"
	historyFile = ".cse_history"
	prompt      = "cse> "
)

var banner = fmt.Sprintf("csound-expression %s opcode explorer\nType an opcode name, :list, or :quit. Ctrl+D exits.", csound.Version)

func red(s string) string    { return "\x1b[31m" + s + "\x1b[0m" }
func yellow(s string) string { return "\x1b[33m" + s + "\x1b[0m" }
func blue(s string) string   { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "list":
		os.Exit(cmdList())
	case "describe":
		os.Exit(cmdDescribe(os.Args[2:]))
	case "render":
		os.Exit(cmdRender())
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(csound.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`csound-expression %s

Usage:
  %s list                        List every cataloged opcode with its doc line.
  %s describe [--yaml] <opcode>  Show an opcode's signatures (optionally as YAML).
  %s render                      Render the built-in demo orchestra to stdout.
  %s repl                        Interactive catalog explorer.
  %s version                     Print the library version.

`, csound.Version, appName, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// list / describe
// -----------------------------------------------------------------------------

func cmdList() int {
	names := csound.Opcodes()
	width := 0
	for _, n := range names {
		if len(n) > width {
			width = len(n)
		}
	}
	for _, n := range names {
		info, _ := csound.Describe(n)
		fmt.Printf("%-*s  %s\n", width, n, info.Doc)
	}
	return 0
}

func cmdDescribe(args []string) int {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	asYAML := fs.Bool("yaml", false, "print the entry as YAML")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s describe [--yaml] <opcode>\n", appName)
		return 2
	}
	name := fs.Arg(0)

	info, ok := csound.Describe(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %q is not in the catalog\n", appName, name)
		return 1
	}
	if *asYAML {
		out, err := csound.CatalogYAML()
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		// Print just the requested entry's document.
		for _, doc := range strings.Split(string(out), "- name: ") {
			if strings.HasPrefix(doc, info.Name+"\n") {
				fmt.Print("- name: " + doc)
				return 0
			}
		}
		return 0
	}
	printInfo(info)
	return 0
}

func printInfo(info csound.OpcodeInfo) {
	fmt.Printf("%s — %s\n", yellow(info.Name), info.Doc)
	if info.Effect {
		fmt.Println("  effectful, sequenced by the enclosing block")
	} else {
		fmt.Printf("  outputs: %d\n", info.Outputs)
	}
	for _, sg := range info.Signatures {
		fmt.Printf("  %s\n", blue(sg))
	}
}

// -----------------------------------------------------------------------------
// render
// -----------------------------------------------------------------------------

// cmdRender builds a small two-instrument orchestra and prints it: a detuned
// saw pair through a Moog ladder and reverb, and a table-driven chime.
func cmdRender() int {
	sine := csound.Ftgen(csound.N(0), csound.N(0), csound.N(8192), csound.N(10), csound.N(1))

	lead := csound.NewInstr(1)
	env := csound.Madsr(csound.N(0.02), csound.N(0.1), csound.N(0.8), csound.N(0.3))
	cps := csound.SigOf(csound.P(4))
	saw1 := csound.Vco2(env, cps, csound.N(0), csound.C(0.5), csound.C(0))
	saw2 := csound.Vco2(env, csound.Mul(cps, csound.C(1.004)), csound.N(0), csound.C(0.5), csound.C(0))
	mix := csound.Mul(csound.Add(saw1, saw2), csound.C(0.4))
	low := csound.Moogladder(mix, csound.C(1800), csound.C(0.35))
	wetL, wetR := csound.Reverbsc(low, low, csound.C(0.7), csound.C(9000))
	lead.Do(csound.Outs(csound.Add(low, wetL), csound.Add(low, wetR)))

	chime := csound.NewInstr(2)
	idx := csound.Phasor(csound.SigOf(csound.P(4)))
	bell := csound.Tablei(csound.Mul(idx, csound.C(8192)), sine)
	shaped := csound.Linen(bell, csound.N(0.05), csound.P(3), csound.N(0.2))
	chime.Do(csound.Outch(
		csound.OutPair{Chan: csound.C(1), Sig: mustA(shaped)},
		csound.OutPair{Chan: csound.C(2), Sig: mustA(shaped)},
	))
	chime.Do(csound.Printks(csound.Text("chime cps %f\\n"), csound.N(1), csound.SigOf(csound.P(4))))

	fmt.Print(csound.RenderOrchestra(csound.DefaultHeader(), lead, chime))
	return 0
}

func mustA(s csound.Sig) csound.Sig {
	if s.Rate() == csound.Ar {
		return s
	}
	return csound.A(s)
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) (out []string) {
		for _, n := range csound.Opcodes() {
			if strings.HasPrefix(n, line) {
				out = append(out, n)
			}
		}
		return out
	})

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			fmt.Println()
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		switch line {
		case ":quit", ":q":
			return 0
		case ":list":
			cmdList()
			continue
		}
		if info, ok := csound.Describe(line); ok {
			printInfo(info)
		} else {
			fmt.Println(red(fmt.Sprintf("%q is not in the catalog", line)))
		}
	}
}
