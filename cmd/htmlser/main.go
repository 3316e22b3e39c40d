// Command htmlser reads HTML, parses it, and re-serializes it through
// the sanitizing serializer. By default the document body is emitted
// as a fragment; -include-root serializes the whole document including
// any doctype. Diagnostics go to stderr.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/njchilds90/htmlserializer"
	"golang.org/x/net/html"
)

func main() {
	configPath := flag.String("config", "", "optional YAML or JSON config file")
	input := flag.String("in", "", "input HTML file (default stdin)")
	output := flag.String("out", "", "output file (default stdout)")
	includeRoot := flag.Bool("include-root", false, "serialize the full document instead of the body fragment")
	scripting := flag.Bool("scripting", true, "treat noscript content as raw text")
	lenient := flag.Bool("lenient", false, "recover from unbalanced close events instead of failing")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg := &FileConfig{}
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	opts := htmlserializer.DefaultOptions()
	if cfg.ScriptingEnabled != nil {
		opts.ScriptingEnabled = *cfg.ScriptingEnabled
	}
	opts.CreateMissingParent = cfg.CreateMissingParent
	include := cfg.IncludeRoot
	inPath, outPath := cfg.Input, cfg.Output

	// Flags set on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scripting":
			opts.ScriptingEnabled = *scripting
		case "lenient":
			opts.CreateMissingParent = *lenient
		case "include-root":
			include = *includeRoot
		case "in":
			inPath = *input
		case "out":
			outPath = *output
		}
	})

	var r io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}
	if cfg.MaxInputBytes > 0 {
		r = io.LimitReader(r, cfg.MaxInputBytes)
	}

	w := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	if include {
		doc, err := html.Parse(r)
		if err != nil {
			log.Fatal(err)
		}
		opts.Scope = htmlserializer.IncludeNode()
		if err := htmlserializer.Serialize(w, doc, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	out, err := htmlserializer.SanitizeReader(r, opts)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		log.Fatal(err)
	}
}
