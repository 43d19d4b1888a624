// Package cli provides the headless command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/youssefhossamm/cursor-kickstart/internal/api"
	"github.com/youssefhossamm/cursor-kickstart/internal/clipboard"
	"github.com/youssefhossamm/cursor-kickstart/internal/config"
	"github.com/youssefhossamm/cursor-kickstart/internal/kit"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
	"github.com/youssefhossamm/cursor-kickstart/internal/service"
)

// CLI provides headless command-line functionality
type CLI struct {
	service *service.Service
	config  config.Config
}

// NewCLI creates a new CLI instance
func NewCLI(svc *service.Service, cfg config.Config) *CLI {
	return &CLI{service: svc, config: cfg}
}

// ExecuteCommand processes a CLI command and returns the result
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "list", "ls":
		return c.listTemplates(commandArgs)
	case "search":
		return c.searchTemplates(commandArgs)
	case "get", "show":
		return c.showTemplate(commandArgs)
	case "copy":
		return c.copyTemplate(commandArgs)
	case "validate":
		return c.validateTemplate(commandArgs)
	case "build":
		return c.buildKit(commandArgs)
	case "structure":
		return c.generateStructure(commandArgs)
	case "fields":
		return c.showFields(commandArgs)
	case "tips":
		return c.showTips(commandArgs)
	case "serve":
		return c.serve(commandArgs)
	case "help":
		return c.printHelp(commandArgs)
	default:
		return fmt.Errorf("unknown command: %s. Use 'help' for usage information", command)
	}
}

// listTemplates lists catalog templates
func (c *CLI) listTemplates(args []string) error {
	var format string
	var category string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		case "--category", "-c":
			if i+1 < len(args) {
				category = args[i+1]
				i++
			}
		}
	}

	var docs []models.TemplateDocument
	switch category {
	case "":
		docs = c.service.ListTemplates()
	case "rules", "rule":
		docs = c.service.ListByCategory(models.CategoryRule)
	case "commands", "command":
		docs = c.service.ListByCategory(models.CategoryCommand)
	default:
		return fmt.Errorf("unknown category: %s (use 'rules' or 'commands')", category)
	}

	return c.formatDocs(docs, format)
}

// searchTemplates fuzzy-searches the catalog
func (c *CLI) searchTemplates(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("search requires a query")
	}

	var format string
	var queryParts []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		default:
			queryParts = append(queryParts, args[i])
		}
	}

	docs := c.service.SearchTemplates(strings.Join(queryParts, " "))
	if len(docs) == 0 {
		fmt.Println("No templates found")
		return nil
	}
	return c.formatDocs(docs, format)
}

// showTemplate displays one template, markdown-rendered by default
func (c *CLI) showTemplate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("show requires a template path")
	}

	path := args[0]
	var format string
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		}
	}

	doc, err := c.service.GetTemplate(path)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "raw", "text":
		fmt.Println(doc.Body)
		return nil
	default:
		rendered, err := renderMarkdown(doc.Body)
		if err != nil {
			// Fall back to raw output when the terminal renderer fails
			fmt.Println(doc.Body)
			return nil
		}
		fmt.Println(rendered)
		return nil
	}
}

// copyTemplate copies a template body to the system clipboard
func (c *CLI) copyTemplate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("copy requires a template path")
	}

	doc, err := c.service.GetTemplate(args[0])
	if err != nil {
		return err
	}

	msg, err := clipboard.CopyWithFallback(doc.Body)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// validateTemplate validates a catalog template or a local file
func (c *CLI) validateTemplate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("validate requires a template path or --file <path>")
	}

	var format string
	var file string
	var target string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		case "--file":
			if i+1 < len(args) {
				file = args[i+1]
				i++
			}
		default:
			target = args[i]
		}
	}

	var vr models.ValidationResult
	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		vr = c.service.ValidateContent(file, models.CategoryRule, string(content))
	} else {
		var err error
		vr, err = c.service.ValidateTemplate(target)
		if err != nil {
			return err
		}
	}

	if format == "json" {
		data, err := json.MarshalIndent(vr, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		printValidationResult(vr)
	}

	if !vr.Valid {
		os.Exit(1)
	}
	return nil
}

// buildKit resolves a selection and writes the zip archive
func (c *CLI) buildKit(args []string) error {
	req := models.SelectionRequest{Vars: make(map[string]string)}
	var out string
	var report bool

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 < len(args) {
				out = args[i+1]
				i++
			}
		case "--name", "-n":
			if i+1 < len(args) {
				req.KitName = args[i+1]
				i++
			}
		case "--var", "-v":
			if i+1 < len(args) {
				key, value, ok := strings.Cut(args[i+1], "=")
				if !ok {
					return fmt.Errorf("invalid variable %q, expected key=value", args[i+1])
				}
				req.Vars[key] = value
				i++
			}
		case "--scaffold", "-s":
			req.IncludeScaffold = true
		case "--defaults", "-d":
			req.Paths = append(req.Paths, c.service.DefaultSelection()...)
		case "--report":
			report = true
		default:
			req.Paths = append(req.Paths, args[i])
		}
	}

	if len(req.Paths) == 0 {
		return fmt.Errorf("build requires template paths or --defaults")
	}

	data, result, err := c.service.PackageKit(req)
	if err != nil {
		return err
	}

	for _, vr := range result.Results {
		if !vr.Valid || len(vr.Issues) > 0 || vr.Oversized {
			printValidationResult(vr)
		}
	}
	if report {
		for _, vr := range result.Results {
			if vr.Valid && len(vr.Issues) == 0 {
				fmt.Printf("✓ %s (~%d tokens)\n", vr.Path, vr.TokenEstimate)
			}
		}
	}

	kitName := req.KitName
	if kitName == "" {
		kitName = kit.DefaultKitName
	}
	if out == "" {
		out = filepath.Join(c.config.OutputDir, kitName+".zip")
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	status := "ok"
	if !result.OK {
		status = "with validation warnings"
	}
	fmt.Printf("Wrote %s (%d files, %s)\n", out, len(result.Set.Files), status)
	return nil
}

// generateStructure produces a project-structure.md document
func (c *CLI) generateStructure(args []string) error {
	var input kit.StructureInput
	var out string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--name", "-n":
			if i+1 < len(args) {
				input.ProjectName = args[i+1]
				i++
			}
		case "--overview":
			if i+1 < len(args) {
				input.Overview = args[i+1]
				i++
			}
		case "--tech", "-t":
			if i+1 < len(args) {
				input.TechStack = splitList(args[i+1])
				i++
			}
		case "--dirs":
			if i+1 < len(args) {
				input.Directories = splitList(args[i+1])
				i++
			}
		case "--notes":
			if i+1 < len(args) {
				input.ArchitectureNotes = args[i+1]
				i++
			}
		case "--out", "-o":
			if i+1 < len(args) {
				out = args[i+1]
				i++
			}
		}
	}

	if input.ProjectName == "" {
		return fmt.Errorf("structure requires --name <project-name>")
	}

	content, vr, err := c.service.GenerateStructure(context.Background(), input)
	if err != nil {
		return err
	}

	if out != "" {
		if err := os.WriteFile(out, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Printf("Wrote %s (~%d tokens)\n", out, vr.TokenEstimate)
		return nil
	}

	fmt.Println(content)
	return nil
}

// showFields prints the frontmatter field reference
func (c *CLI) showFields(args []string) error {
	var format string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		}
	}

	fields := c.service.FrontmatterFields()
	if format == "json" {
		data, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, f := range fields {
		required := "optional"
		if f.Required {
			required = "required"
		}
		fmt.Printf("%s (%s, %s)\n  %s\n  Example:\n", f.Field, f.Type, required, f.Description)
		for _, line := range strings.Split(f.Example, "\n") {
			fmt.Printf("    %s\n", line)
		}
		fmt.Println()
	}

	fmt.Println("Rules vs. Commands:")
	for _, row := range c.service.Comparison() {
		fmt.Printf("  %-14s rules: %-42s commands: %s\n", row.Aspect, row.Rules, row.Commands)
	}
	return nil
}

// serve starts the HTTP API server
func (c *CLI) serve(args []string) error {
	port := c.config.Port
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--port", "-p":
			if i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil || n <= 0 || n >= 65536 {
					return fmt.Errorf("invalid port: %s", args[i+1])
				}
				port = n
				i++
			}
		}
	}
	return api.NewAPIServer(c.service, port).Start()
}

// showTips prints quick usage tips
func (c *CLI) showTips(args []string) error {
	category := "general"
	if len(args) > 0 {
		category = args[0]
	}
	for _, tip := range c.service.QuickTips(category) {
		fmt.Printf("  • %s\n", tip)
	}
	return nil
}

// formatDocs prints a document list as a table or JSON
func (c *CLI) formatDocs(docs []models.TemplateDocument, format string) error {
	switch format {
	case "json":
		type entry struct {
			Path            string `json:"path"`
			Name            string `json:"name"`
			Category        string `json:"category"`
			Description     string `json:"description"`
			DefaultSelected bool   `json:"default_selected"`
		}
		entries := make([]entry, len(docs))
		for i, doc := range docs {
			entries[i] = entry{doc.Path, doc.Name, string(doc.Category), doc.Description, doc.DefaultSelected}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		fmt.Printf("%-36s %-8s %-24s %s\n", "PATH", "CATEGORY", "NAME", "DESCRIPTION")
		for _, doc := range docs {
			marker := " "
			if doc.DefaultSelected {
				marker = "*"
			}
			fmt.Printf("%-36s %-8s %-24s %s %s\n", doc.Path, doc.Category, doc.Name, doc.Description, marker)
		}
		fmt.Println("\n* = included in the default selection")
	}
	return nil
}

func printValidationResult(vr models.ValidationResult) {
	status := "valid"
	if !vr.Valid {
		status = "INVALID"
	}
	fmt.Printf("%s: %s (~%d tokens)\n", vr.Path, status, vr.TokenEstimate)
	for _, issue := range vr.Issues {
		level := "warning"
		if issue.Blocking {
			level = "error"
		}
		fmt.Printf("  [%s] %s\n", level, issue.Message)
	}
	if vr.Oversized {
		fmt.Printf("  [warning] large template, consider splitting it\n")
	}
}

func renderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// printUsage shows brief usage information
func (c *CLI) printUsage() error {
	fmt.Println(`Usage: cursor-kickstart <command> [arguments]

Commands:
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
  help [command]     Show detailed help`)
	return nil
}

// printHelp shows detailed help for commands
func (c *CLI) printHelp(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	switch args[0] {
	case "list", "ls":
		fmt.Println(`Usage: cursor-kickstart list [--category rules|commands] [--format json]

Lists catalog templates. Templates marked * are part of the default
selection used by 'build --defaults'.`)
	case "search":
		fmt.Println(`Usage: cursor-kickstart search <query> [--format json]

Fuzzy-searches template names and descriptions.`)
	case "get", "show":
		fmt.Println(`Usage: cursor-kickstart show <path> [--format json|raw]

Shows a template. The default output renders the markdown for the
terminal; use --format raw for the exact body.`)
	case "copy":
		fmt.Println(`Usage: cursor-kickstart copy <path>

Copies the template body to the system clipboard.`)
	case "validate":
		fmt.Println(`Usage: cursor-kickstart validate <path> [--format json]
       cursor-kickstart validate --file <local.md>

Validates rule frontmatter: required fields, field types, unknown
fields. Exits non-zero when a blocking issue is found.`)
	case "build":
		fmt.Println(`Usage: cursor-kickstart build <paths...> [options]

Options:
  --defaults, -d       Add the default template selection
  --name, -n <name>    Kit directory name (default: cursor-starter-kit)
  --var, -v key=value  Substitute {{key}} placeholders (repeatable)
  --scaffold, -s       Include AGENTS.md and README.md scaffolding
  --out, -o <file>     Output path (default: <name>.zip)
  --report             Print validation results for every template

Validation issues are reported but never block the archive.`)
	case "structure":
		fmt.Println(`Usage: cursor-kickstart structure --name <project> [options]

Options:
  --overview <text>    Project overview paragraph
  --tech, -t <list>    Comma-separated tech stack
  --dirs <list>        Comma-separated directory paths
  --notes <text>       Architecture notes
  --out, -o <file>     Write to a file instead of stdout

Uses the Gemini API when GEMINI_API_KEY is set, otherwise renders the
built-in template.`)
	case "fields":
		fmt.Println(`Usage: cursor-kickstart fields [--format json]

Shows the rule frontmatter reference and the rules-vs-commands
comparison.`)
	case "tips":
		fmt.Println(`Usage: cursor-kickstart tips [rules|commands]

Shows quick usage tips for writing rules and commands.`)
	case "serve":
		fmt.Println(`Usage: cursor-kickstart serve [--port n]

Starts the HTTP API server. Equivalent to the --serve flag.`)
	default:
		return fmt.Errorf("no help available for: %s", args[0])
	}
	return nil
}
