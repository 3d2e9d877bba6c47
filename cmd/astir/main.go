package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/astir-lang/astir/internal/codegen/python"
	"github.com/astir-lang/astir/internal/treefile"
	"github.com/astir-lang/astir/internal/version"
)

// astir renders YAML tree documents as Python source.
// Flags:
//
//	-o FILE   write output to FILE (single input only).
//	-w        write each input next to itself with a .py extension.
//	-indent   indentation unit (default four spaces).
//	-watch    with -w, keep running and re-render inputs on change.
//	-version  print the astir version and exit.
func main() {
	var (
		outFile      string
		writeInPlace bool
		indentUnit   string
		watchInputs  bool
		showVersion  bool
	)
	flag.StringVar(&outFile, "o", "", "write output to file (single input only)")
	flag.BoolVar(&writeInPlace, "w", false, "write each input next to itself with a .py extension")
	flag.StringVar(&indentUnit, "indent", python.DefaultIndent, "indentation unit")
	flag.BoolVar(&watchInputs, "watch", false, "keep running and re-render inputs on change (requires -w)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("astir", version.Version)
		return
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: astir [flags] tree.yaml ...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if outFile != "" && len(inputs) > 1 {
		fmt.Fprintln(os.Stderr, "astir: -o takes a single input")
		os.Exit(2)
	}
	if watchInputs && !writeInPlace {
		fmt.Fprintln(os.Stderr, "astir: -watch requires -w")
		os.Exit(2)
	}

	transpiler := python.New(python.WithIndent(indentUnit))

	for _, input := range inputs {
		if err := renderOne(transpiler, input, outFile, writeInPlace); err != nil {
			fmt.Fprintln(os.Stderr, "astir:", err)
			os.Exit(1)
		}
	}

	if watchInputs {
		if err := watch(transpiler, inputs); err != nil {
			fmt.Fprintln(os.Stderr, "astir:", err)
			os.Exit(1)
		}
	}
}

func renderOne(t *python.Transpiler, input, outFile string, writeInPlace bool) error {
	mod, warnings, err := treefile.LoadFile(input)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "astir: %s: %s\n", input, warning)
	}

	text, err := t.Render(mod)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	switch {
	case outFile != "":
		return os.WriteFile(outFile, []byte(text), 0o644)
	case writeInPlace:
		return os.WriteFile(outputPath(input), []byte(text), 0o644)
	default:
		_, err := os.Stdout.WriteString(text)
		return err
	}
}

func outputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".py"
}

// watch re-renders inputs whenever they are written. Editors often
// replace files on save, so Create and Rename count as changes too.
func watch(t *python.Transpiler, inputs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(inputs))
	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return err
		}
		watched[abs] = true
		// Watch the directory: rename-and-replace saves drop the file's
		// own watch.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	log.Printf("watching %d file(s)", len(inputs))
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if err := renderOne(t, ev.Name, "", true); err != nil {
				log.Printf("render: %v", err)
				continue
			}
			log.Printf("rendered %s", outputPath(ev.Name))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}
