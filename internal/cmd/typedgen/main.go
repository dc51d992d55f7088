// Command typedgen writes concrete per-kind wrappers around the generic
// parsers of package atoi. It is meant to be run through go:generate:
//
//	//go:generate go run atoi-radix/internal/cmd/typedgen -out . -pkg typed
package main

import (
	"flag"
	"log"

	"atoi-radix/internal/gen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("typedgen: ")

	cfg := gen.DefaultGeneratorConfig()

	out := flag.String("out", ".", "output directory")
	kinds := flag.String("kinds", "", "comma-separated integer types to generate (default: all)")
	flag.StringVar(&cfg.PackageName, "pkg", cfg.PackageName, "package name of the generated file")
	flag.StringVar(&cfg.Filename, "file", cfg.Filename, "name of the generated file")
	flag.StringVar(&cfg.AtoiImport, "atoi", cfg.AtoiImport, "import path of the generic parsers")
	flag.Parse()

	if *kinds != "" {
		parsed, err := gen.ParseKinds(*kinds)
		if err != nil {
			log.Fatal(err)
		}

		cfg.Kinds = parsed
	}

	cfg.DebugDir = *out

	file, err := gen.NewGenerator(cfg).Generate()
	if err != nil {
		log.Fatal(err)
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, *out); err != nil {
		log.Fatal(err)
	}
}
