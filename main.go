package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/youssefhossamm/cursor-kickstart/internal/api"
	"github.com/youssefhossamm/cursor-kickstart/internal/cli"
	"github.com/youssefhossamm/cursor-kickstart/internal/config"
	"github.com/youssefhossamm/cursor-kickstart/internal/errors"
	"github.com/youssefhossamm/cursor-kickstart/internal/kit"
	"github.com/youssefhossamm/cursor-kickstart/internal/llm"
	"github.com/youssefhossamm/cursor-kickstart/internal/service"
	"github.com/youssefhossamm/cursor-kickstart/internal/ui"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`cursor-kickstart - Cursor starter-kit builder

USAGE:
    cursor-kickstart [OPTIONS] [COMMAND]

OPTIONS:
    --help       Show this help information
    --version    Print version information
    --serve      Start the HTTP API server
    --port       Port for the API server (default: 8080, or PORT env)

COMMANDS:
    (no command)       Start the interactive wizard
    list, ls           List catalog templates
    search <query>     Search templates
    get, show <path>   Show a template
    copy <path>        Copy a template body to the clipboard
    validate <path>    Validate a template's frontmatter
    build <paths...>   Build a starter-kit zip from selected templates
    structure          Generate a project-structure.md rule
    fields             Show the frontmatter field reference
    tips [category]    Show quick usage tips
    serve [--port n]   Start the HTTP API server
    help               Show CLI command help

EXAMPLES:
    cursor-kickstart                                 # Interactive wizard
    cursor-kickstart --serve --port 9000             # HTTP API on port 9000
    cursor-kickstart list --category rules           # List rule templates
    cursor-kickstart build --defaults -v project_name=Acme
    cursor-kickstart build rules/cursor-rules.md commands/debug.md
    cursor-kickstart structure --name Acme --tech Go,PostgreSQL
    cursor-kickstart validate --file my-rule.md
    cursor-kickstart help build                      # Detailed command help

ENVIRONMENT:
    CURSOR_KICKSTART_OUTPUT           Output directory for archives (default: .)
    CURSOR_KICKSTART_TOKEN_WARN       Token estimate warning threshold (default: 1000)
    CURSOR_KICKSTART_CHARS_PER_TOKEN  Characters per token heuristic (default: 4)
    GEMINI_API_KEY                    Enables AI-assisted structure generation
    PORT                              Default API server port

For more information, visit: https://github.com/youssefhossamm/cursor-kickstart
`)
}

// newGenerator builds the AI collaborator when a key is configured.
// Absence is not an error; structure generation falls back to the
// built-in template.
func newGenerator(ctx context.Context) kit.Generator {
	if !config.HasGeminiKey() {
		return nil
	}
	client, err := llm.NewGeminiClient(ctx)
	if err != nil {
		log.Printf("Warning: %s", errors.GetAppError(err).Message)
		return nil
	}
	return client
}

func main() {
	var showVersion bool
	var showHelp bool
	var serve bool
	var port int

	cfg := config.Load()

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&serve, "serve", false, "Start the HTTP API server")
	flag.IntVar(&port, "port", cfg.Port, "Port for the API server")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("cursor-kickstart version %s\n", version)
		os.Exit(0)
	}

	ctx := context.Background()
	svc := service.NewService(cfg, newGenerator(ctx))

	if serve {
		srv := api.NewAPIServer(svc, port)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting API server: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Command line arguments mean CLI mode
	args := flag.Args()
	if len(args) > 0 {
		cliHandler := cli.NewCLI(svc, cfg)
		if err := cliHandler.ExecuteCommand(args); err != nil {
			handler := errors.NewCLIErrorHandler(os.Getenv("VERBOSE") == "true")
			fmt.Fprintf(os.Stderr, "%s\n", handler.FormatError(err))
			os.Exit(1)
		}
		return
	}

	// No arguments provided - start the wizard
	model, err := ui.NewModel(svc, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println(err)
		return
	}
}
