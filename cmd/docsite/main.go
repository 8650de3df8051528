package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/awalczuk/docsite"
	"github.com/awalczuk/docsite/fs"
	"github.com/awalczuk/docsite/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used when the input is an entity database.
	DB *sqlite.DB

	// Entity source wired from the input argument, exposed for tests.
	Source docsite.EntitySource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsite"),
		kong.Description("Generates the navigation tree and search index for a static documentation site."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsite --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the entity source from the command's input argument.
	var input string
	switch cmd {
	case "build":
		input = cli.Build.Input
	case "validate":
		input = cli.Validate.Input
	}
	if input != "" {
		source, err := m.openSource(input)
		if err != nil {
			return err
		}
		deps.Source = source
		m.Source = source
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

// openSource picks the entity source implementation from the input file
// extension: .db/.sqlite/.sqlite3 open as an entity database, everything
// else reads as a JSON dump.
func (m *Main) openSource(input string) (docsite.EntitySource, error) {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".db", ".sqlite", ".sqlite3":
		m.DB = sqlite.NewDB(input)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open entity database at %q: %w", input, err)
		}
		return sqlite.NewEntityService(m.DB), nil
	default:
		return fs.NewLoader(input), nil
	}
}

// defaultOut resolves the output directory: the DOCSITE_OUT environment
// variable when set, "site" otherwise.
func defaultOut() string {
	if out := os.Getenv("DOCSITE_OUT"); out != "" {
		return out
	}
	return "site"
}
