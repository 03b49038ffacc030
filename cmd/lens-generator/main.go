// Package main provides the CLI entrypoint for lens-generator.
//
// lens-generator is a codegen tool that:
//   - Parses Go packages (go/types) or YAML structure descriptions
//   - Derives a full-field constructor, one lens per public field, and a
//     field-to-lens registry for each struct declaration
//   - Emits deterministic Go source into the declaring package
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"lens-generator/internal/analyze"
	"lens-generator/internal/diagnostic"
	"lens-generator/internal/gen"
	"lens-generator/internal/plan"
	"lens-generator/internal/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "gen":
		cfg, perr := parseFlags(os.Args[2:])
		if perr != nil {
			os.Exit(2)
		}

		err = runGen(cfg)

	case "watch":
		cfg, perr := parseFlags(os.Args[2:])
		if perr != nil {
			os.Exit(2)
		}

		err = runWatch(cfg)

	case "-help", "--help", "help":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "lens-generator:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `lens-generator - derive functional lenses for struct declarations

Usage:
  lens-generator gen   [-pkg pattern]... [-type A,B] [-schema glob]... [-out dir] [-lens-import path] [-dump]
  lens-generator watch [same flags as gen]

Flags:
  -pkg          Go package pattern to analyze (repeatable)
  -type         comma-separated type names to derive (default: every struct)
  -schema       YAML structure description glob, doublestar syntax (repeatable)
  -out          output directory override (default: the declaring package)
  -lens-import  import path of the lens runtime package
  -dump         dump derivation plans instead of writing files`)
}

type config struct {
	pkgs       stringList
	typeNames  string
	schemas    stringList
	out        string
	lensImport string
	dump       bool
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("lens-generator", flag.ContinueOnError)
	fs.Var(&cfg.pkgs, "pkg", "Go package pattern to analyze (repeatable)")
	fs.StringVar(&cfg.typeNames, "type", "", "comma-separated type names to derive")
	fs.Var(&cfg.schemas, "schema", "YAML structure description glob (repeatable)")
	fs.StringVar(&cfg.out, "out", "", "output directory override")
	fs.StringVar(&cfg.lensImport, "lens-import", gen.DefaultConfig().LensImport, "lens runtime import path")
	fs.BoolVar(&cfg.dump, "dump", false, "dump derivation plans instead of writing files")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if len(cfg.pkgs) == 0 && len(cfg.schemas) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -pkg or -schema is required")
		return nil, flag.ErrHelp
	}

	return cfg, nil
}

// loadDecls gathers declarations from both front ends. The second result
// lists filesystem paths worth watching for changes.
func loadDecls(cfg *config) ([]*schema.Decl, []string, error) {
	var (
		decls []*schema.Decl
		watch []string
	)

	wanted := wantedTypes(cfg.typeNames)

	if len(cfg.pkgs) > 0 {
		analyzer := analyze.NewAnalyzer()

		loaded, err := analyzer.LoadPackages(cfg.pkgs...)
		if err != nil {
			return nil, nil, err
		}

		decls = append(decls, selectDecls(loaded, wanted)...)
	}

	if len(cfg.schemas) > 0 {
		paths, err := schema.ExpandGlob(cfg.schemas...)
		if err != nil {
			return nil, nil, err
		}

		for _, p := range paths {
			f, err := schema.LoadFile(p)
			if err != nil {
				return nil, nil, err
			}

			watch = append(watch, p)

			loaded := make([]*schema.Decl, len(f.Structures))
			for i := range f.Structures {
				loaded[i] = &f.Structures[i]
			}

			decls = append(decls, selectDecls(loaded, wanted)...)
		}
	}

	for _, d := range decls {
		if d.Dir != "" {
			watch = append(watch, d.Dir)
		}
	}

	return decls, watch, nil
}

// wantedTypes parses the -type flag into a name set, or nil when the flag
// is absent.
func wantedTypes(typeNames string) map[string]bool {
	if typeNames == "" {
		return nil
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Split(typeNames, ",") {
		wanted[strings.TrimSpace(name)] = true
	}

	return wanted
}

// selectDecls filters loaded declarations by the wanted name set. Applied to
// both front ends. With a nil set every struct declaration derives and other
// kinds are skipped; with a set, requested non-struct types flow through so
// derivation rejects them with a proper diagnostic.
func selectDecls(loaded []*schema.Decl, wanted map[string]bool) []*schema.Decl {
	var out []*schema.Decl

	for _, d := range loaded {
		if wanted == nil {
			if d.Kind == schema.KindStruct {
				out = append(out, d)
			}

			continue
		}

		if wanted[d.Name] {
			out = append(out, d)
		}
	}

	return out
}

func runGen(cfg *config) error {
	decls, _, err := loadDecls(cfg)
	if err != nil {
		return err
	}

	if len(decls) == 0 {
		return fmt.Errorf("no declarations matched")
	}

	var (
		plans []*plan.Plan
		diags diagnostic.Diagnostics
	)

	for _, d := range decls {
		p, ds := plan.Derive(d)
		diags.Merge(ds)

		if p != nil {
			plans = append(plans, p)
		}
	}

	for _, d := range diags.All() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("derivation failed with %d error(s)", len(diags.Errors))
	}

	if cfg.dump {
		spew.Dump(plans)
		return nil
	}

	genCfg := gen.DefaultConfig()
	genCfg.LensImport = cfg.lensImport
	genCfg.OutputDir = cfg.out

	files, err := gen.NewGenerator(genCfg).GenerateAll(plans)
	if err != nil {
		return err
	}

	return gen.WriteFiles(files, cfg.out)
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
