package helpers

import (
	"flag"
	"log"
	"os"

	"github.com/go-mclib/menus/pkg/menus"
)

// Flags holds common CLI flags for the example menus.
type Flags struct {
	Title   string
	Rows    int
	Verbose bool
}

// RegisterFlags registers the standard CLI flags on the default flag set.
func RegisterFlags(f *Flags) {
	flag.StringVar(&f.Title, "t", "Menu", "menu title")
	flag.IntVar(&f.Rows, "r", 3, "row count for row-based menus (1-6)")
	flag.BoolVar(&f.Verbose, "v", false, "verbose logging")
}

// NewLogger returns the logger the examples share. Verbose adds file/line.
func NewLogger(f Flags) *log.Logger {
	logFlags := log.LstdFlags
	if f.Verbose {
		logFlags |= log.Lshortfile
	}
	return log.New(os.Stdout, "", logFlags)
}

// NewBuilder creates a row-based builder from parsed flags, exiting on an
// invalid row count.
func NewBuilder(f Flags, registry *menus.Registry) *menus.Builder {
	b, err := menus.NewBuilder(f.Title, f.Rows)
	if err != nil {
		log.Fatalf("invalid -r flag: %v", err)
	}
	return b.WithRegistry(registry)
}
