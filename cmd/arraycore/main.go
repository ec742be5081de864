// cmd/arraycore/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"arraycore/internal/netstream"
	"arraycore/internal/reporting"
	"arraycore/internal/repl"
	"arraycore/internal/store"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		return
	}

	switch args[0] {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-v", "version":
		fmt.Println("arraycore", version)
	case "repl":
		repl.Start()
	case "run":
		runCommand(args[1:])
	case "serve":
		serveCommand(args[1:])
	case "save":
		saveCommand(args[1:])
	case "cat":
		catCommand(args[1:])
	case "ls":
		lsCommand()
	case "rm":
		rmCommand(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		showUsage()
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println(`arraycore - an array-oriented verb evaluator

Usage:
  arraycore repl                 start the interactive pipeline REPL
  arraycore run <pipeline.json>  evaluate one pipeline document and print its result
  arraycore serve [addr]         serve a WebSocket pipeline endpoint (default :8080)
  arraycore save <name> <pipeline.json>  evaluate a pipeline and store its result under name
  arraycore cat <name>           print a previously saved array
  arraycore ls                   list saved array names
  arraycore rm <name>            delete a saved array
  arraycore version              print the version
  arraycore help                 print this message`)
}

func runCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: arraycore run <pipeline.json>")
		os.Exit(1)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("arraycore: %v", err)
	}

	result, _, err := repl.RunJSON(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, reporting.FormatError(err))
		os.Exit(1)
	}
	if result != nil {
		fmt.Println(reporting.FormatValue(result))
	}
}

func serveCommand(args []string) {
	addr := ":8080"
	if len(args) > 0 {
		addr = args[0]
	}

	namedStore := openDefaultStore()
	defer namedStore.Close()

	server := netstream.NewServer()
	http.Handle("/pipeline", server)

	fmt.Printf("arraycore: serving pipelines on %s (store: %s)\n", addr, storePath())
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("arraycore: %v", err)
	}
}

func storePath() string {
	if p := os.Getenv("ARRAYCORE_STORE"); p != "" {
		return p
	}
	return "arraycore.db"
}

func openDefaultStore() *store.Store {
	s, err := store.Open(storePath())
	if err != nil {
		log.Fatalf("arraycore: opening store: %v", err)
	}
	return s
}

func saveCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: arraycore save <name> <pipeline.json>")
		os.Exit(1)
	}
	name, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("arraycore: %v", err)
	}
	result, _, err := repl.RunJSON(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, reporting.FormatError(err))
		os.Exit(1)
	}

	s := openDefaultStore()
	defer s.Close()
	if err := s.Save(name, result); err != nil {
		log.Fatalf("arraycore: %v", err)
	}
	fmt.Printf("saved %q\n", name)
}

func catCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: arraycore cat <name>")
		os.Exit(1)
	}
	s := openDefaultStore()
	defer s.Close()
	v, err := s.Load(args[0])
	if err != nil {
		log.Fatalf("arraycore: %v", err)
	}
	fmt.Println(reporting.FormatValue(v))
}

func lsCommand() {
	s := openDefaultStore()
	defer s.Close()
	names, err := s.List()
	if err != nil {
		log.Fatalf("arraycore: %v", err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

func rmCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: arraycore rm <name>")
		os.Exit(1)
	}
	s := openDefaultStore()
	defer s.Close()
	if err := s.Delete(args[0]); err != nil {
		log.Fatalf("arraycore: %v", err)
	}
}
