// cmd/fumen/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"fumen/cmd/fumen/commands"
)

const version = "1.0.0"

var commandAliases = map[string]string{
	"d": "decode",
	"e": "encode",
	"v": "validate",
}

func main() {
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) == 0 {
		showUsage()
		return
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-version", "version":
		fmt.Printf("fumen %s\n", version)
	case "decode":
		run(commands.Decode(args[1:], os.Stdout))
	case "encode":
		run(commands.Encode(args[1:], os.Stdout))
	case "validate":
		run(commands.Validate(args[1:], os.Stdout))
	case "corpus":
		runCorpus(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", cmd)
		showUsage()
		os.Exit(1)
	}
}

func runCorpus(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: fumen corpus <add|verify|report> ...")
		os.Exit(1)
	}

	switch args[0] {
	case "add":
		run(commands.CorpusAdd(args[1:], os.Stdout))
	case "verify":
		run(commands.CorpusVerify(args[1:], os.Stdout))
	case "report":
		run(commands.CorpusReport(args[1:], os.Stdout))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown corpus command %q\n", args[0])
		os.Exit(1)
	}
}

func run(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println("fumen - fumen codec CLI")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fumen decode <string>            Decode a fumen string, print pages as JSON  (alias: d)")
	fmt.Println("  fumen encode <file.json>         Encode a page list (JSON) into a fumen string (alias: e)")
	fmt.Println("  fumen validate <string>          Decode, re-encode, report round-trip result  (alias: v)")
	fmt.Println("  fumen corpus add <string>        Add a fumen to the local regression corpus")
	fmt.Println("  fumen corpus verify              Round-trip every corpus entry")
	fmt.Println("  fumen corpus report <json|csv>   Verify every corpus entry and export the results")
	fmt.Println("  fumen version                    Print the CLI version")
	fmt.Println("  fumen help                       Show this message")
}
