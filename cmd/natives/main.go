package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/playday3008/scripthook-go/bindings"
	"github.com/playday3008/scripthook-go/invoker"
	"github.com/playday3008/scripthook-go/joaat"
	"github.com/playday3008/scripthook-go/resolver"
)

func main() {
	var (
		hashName    = flag.String("hash", "", "Name to hash with joaat")
		list        = flag.Bool("list", false, "List known SDK exports and exit")
		identify    = flag.String("identify", "", "Classify a game executable path")
		packExpr    = flag.String("pack", "", "Pack a typed literal (type:value) into an argument slot")
		genFile     = flag.String("gen", "", "Generate hash constants from a name list file")
		genPkg      = flag.String("pkg", "natives", "Package name for generated code")
		genOut      = flag.String("out", "", "Output file for generated code (default stdout)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		resolver.SetLogger(logger)
		bindings.SetLogger(logger)
	}

	switch {
	case *interactive:
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *hashName != "":
		runHash(*hashName)

	case *list:
		runList()

	case *identify != "":
		if err := runIdentify(*identify); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *packExpr != "":
		if err := runPack(*packExpr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *genFile != "":
		if err := runGen(*genFile, *genPkg, *genOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "Usage: natives -hash <name>")
		fmt.Fprintln(os.Stderr, "       natives -list")
		fmt.Fprintln(os.Stderr, "       natives -identify <path-to-game-exe>")
		fmt.Fprintln(os.Stderr, "       natives -pack <type:value>")
		fmt.Fprintln(os.Stderr, "       natives -gen <names-file> [-pkg name] [-out file.go]")
		fmt.Fprintln(os.Stderr, "       natives -i  (interactive mode)")
		os.Exit(1)
	}
}

func runHash(name string) {
	fmt.Printf("name:      %q\n", name)
	fmt.Printf("joaat32:   0x%08X\n", joaat.String32(name))
	fmt.Printf("joaat64:   0x%016X\n", joaat.String64(name))
	fmt.Printf("literal32: 0x%08X\n", joaat.Literal32(name))
	fmt.Printf("literal64: 0x%016X\n", joaat.Literal64(name))
}

func runList() {
	fmt.Println("Supported hosts:")
	fmt.Println("  GTA5, GTA5_Enhanced -> ScriptHookV.dll")
	fmt.Println("  RDR2                -> ScriptHookRDR2.dll")

	fmt.Println("\nSDK exports:")
	for _, e := range bindings.Catalog() {
		fmt.Printf("  %-28s %s\n", e.Name, e.Symbol)
	}
}

// staticPath feeds a fixed executable path into the resolver so
// classification can run outside the game process.
type staticPath struct {
	path string
}

func (s staticPath) ModulePath() (string, error) {
	return s.path, nil
}

func runIdentify(path string) error {
	r := resolver.New(resolver.Options{Path: staticPath{path: path}})
	id, err := r.Identity()
	if err != nil {
		return err
	}

	fmt.Printf("Module:   %s\n", path)
	fmt.Printf("Identity: %s\n", id)
	fmt.Printf("Library:  %s\n", id.LibraryName())
	return nil
}

func runPack(expr string) error {
	v, err := parseSlotValue(expr)
	if err != nil {
		return err
	}
	slot, err := invoker.PackValue(v)
	if err != nil {
		return err
	}

	fmt.Printf("value: %v (%T)\n", v, v)
	fmt.Printf("slot:  0x%016X\n", uint64(slot))
	return nil
}

// parseSlotValue turns a typed literal such as "i32:-1" or "f32:2.5"
// into the Go value it names. Integer literals accept any base strconv
// does (0x..., 0o..., plain decimal).
func parseSlotValue(expr string) (any, error) {
	kind, lit, found := strings.Cut(expr, ":")
	if !found {
		return nil, fmt.Errorf("want type:value, e.g. i32:-1")
	}
	kind = strings.TrimSpace(kind)
	lit = strings.TrimSpace(lit)

	switch kind {
	case "bool":
		return strconv.ParseBool(lit)
	case "i8":
		v, err := strconv.ParseInt(lit, 0, 8)
		if err != nil {
			return nil, err
		}
		return int8(v), nil
	case "i16":
		v, err := strconv.ParseInt(lit, 0, 16)
		if err != nil {
			return nil, err
		}
		return int16(v), nil
	case "i32":
		v, err := strconv.ParseInt(lit, 0, 32)
		if err != nil {
			return nil, err
		}
		return int32(v), nil
	case "i64":
		v, err := strconv.ParseInt(lit, 0, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	case "u8":
		v, err := strconv.ParseUint(lit, 0, 8)
		if err != nil {
			return nil, err
		}
		return uint8(v), nil
	case "u16":
		v, err := strconv.ParseUint(lit, 0, 16)
		if err != nil {
			return nil, err
		}
		return uint16(v), nil
	case "u32":
		v, err := strconv.ParseUint(lit, 0, 32)
		if err != nil {
			return nil, err
		}
		return uint32(v), nil
	case "u64":
		v, err := strconv.ParseUint(lit, 0, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	case "addr":
		v, err := strconv.ParseUint(lit, 0, 64)
		if err != nil {
			return nil, err
		}
		return uintptr(v), nil
	case "f32":
		v, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	case "f64":
		return strconv.ParseFloat(lit, 64)
	default:
		return nil, fmt.Errorf("unknown slot type %q", kind)
	}
}

func runGen(input, pkg, out string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if len(names) == 0 {
		return fmt.Errorf("no names in %s", input)
	}

	var b strings.Builder
	b.WriteString("// Code generated by natives -gen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("const (\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\t%s uint32 = 0x%08X // %s\n", identFor(name), joaat.String32(name), name)
	}
	b.WriteString(")\n")

	if out == "" {
		fmt.Print(b.String())
		return nil
	}
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Generated %d constants into %s\n", len(names), out)
	return nil
}

// identFor derives an exported Go identifier from an asset name:
// "police_car" becomes HashPoliceCar.
func identFor(name string) string {
	var b strings.Builder
	b.WriteString("Hash")
	upper := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			if upper {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			upper = false
		case r >= 'A' && r <= 'Z':
			if !upper {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
			upper = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}
	return b.String()
}
