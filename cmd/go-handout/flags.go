package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the go-handout CLI.
type cliFlags struct {
	tiles   string
	dpi     int
	config  string
	verbose bool
	version bool

	serve bool
	addr  string
}

// parseFlags parses command-line flags and returns the remaining
// positional arguments. args must include the program name at index 0.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("go-handout", flag.ContinueOnError)
	fs.Usage = func() { printUsage(os.Stderr) }

	fs.StringVarP(&f.tiles, "tiles", "t", "", "slides per page: auto, 1, 2, 4, 6, 9")
	fs.IntVarP(&f.dpi, "dpi", "d", 0, "rasterization resolution (max 300)")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVar(&f.serve, "serve", false, "run the HTTP upload service instead of converting")
	fs.StringVar(&f.addr, "addr", "", "listen address for --serve (default :8080)")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: go-handout [flags] <input> [output.pdf]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a slide deck (.pdf, .ppt, .pptx, .odp) into a print-optimized")
	fmt.Fprintln(w, "handout PDF with multiple slides tiled per US Letter page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input         Source slide deck")
	fmt.Fprintln(w, "  output.pdf    Destination (default: <input>_handout.pdf)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --tiles <mode>    Slides per page: auto, 1, 2, 4, 6, 9 (default auto)")
	fmt.Fprintln(w, "  -d, --dpi <n>         Rasterization resolution, capped at 300 (default 200)")
	fmt.Fprintln(w, "  -c, --config <path>   YAML config file with defaults")
	fmt.Fprintln(w, "  -v, --verbose         Show detailed progress")
	fmt.Fprintln(w, "      --serve           Run the HTTP upload service")
	fmt.Fprintln(w, "      --addr <addr>     Listen address for --serve (default :8080)")
	fmt.Fprintln(w, "      --version         Show version information")
}
