package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	orgcontext "github.com/Ingenimax/orgcontext-go/pkg"
	"github.com/Ingenimax/orgcontext-go/pkg/directory"
	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/logging"
	"github.com/Ingenimax/orgcontext-go/pkg/multitenancy"
)

const version = "0.1.0"

// Global logger instance
var logger = logging.New()

func main() {
	settings, args := loadSettings()

	if len(args) < 1 {
		printUsage()
		return
	}

	switch args[0] {
	case "version", "--version", "-v":
		fmt.Printf("orgctx-cli v%s\n", version)
	case "help", "--help", "-h":
		printUsage()
	case "ask":
		if len(args) < 2 {
			fmt.Println("Usage: orgctx-cli ask \"<query>\"")
			os.Exit(1)
		}
		ask(settings, strings.Join(args[1:], " "))
	case "chat":
		chat(settings)
	default:
		fmt.Printf("Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

// loadSettings resolves CLI settings from flags, environment variables
// (ORGCONTEXT_CLI_*) and an optional orgctx.yaml in the working directory,
// in that precedence order. Returns the remaining positional arguments.
func loadSettings() (*viper.Viper, []string) {
	v := viper.New()
	v.SetDefault("directory", "")
	v.SetDefault("org", "")
	v.SetDefault("output", "text")

	v.SetEnvPrefix("ORGCONTEXT_CLI")
	v.AutomaticEnv()

	v.SetConfigName("orgctx")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Printf("Failed to read orgctx.yaml: %v\n", err)
			os.Exit(1)
		}
	}

	var args []string
	osArgs := os.Args[1:]
	for i := 0; i < len(osArgs); i++ {
		arg := osArgs[i]
		switch {
		case strings.HasPrefix(arg, "--directory="):
			v.Set("directory", strings.TrimPrefix(arg, "--directory="))
		case arg == "--directory" && i+1 < len(osArgs):
			v.Set("directory", osArgs[i+1])
			i++
		case strings.HasPrefix(arg, "--org="):
			v.Set("org", strings.TrimPrefix(arg, "--org="))
		case arg == "--org" && i+1 < len(osArgs):
			v.Set("org", osArgs[i+1])
			i++
		case strings.HasPrefix(arg, "--output="):
			v.Set("output", strings.TrimPrefix(arg, "--output="))
		case arg == "--json":
			v.Set("output", "json")
		default:
			args = append(args, arg)
		}
	}

	return v, args
}

// newEngine builds the engine: from a YAML directory fixture when one is
// configured, otherwise from the environment-configured backend.
func newEngine(settings *viper.Viper) *orgcontext.Engine {
	var options []orgcontext.EngineOption

	if path := settings.GetString("directory"); path != "" {
		store, err := directory.FromYAMLFile(path)
		if err != nil {
			fmt.Printf("Failed to load directory fixture: %v\n", err)
			os.Exit(1)
		}
		options = append(options, orgcontext.WithStore(store))
	}

	engine, err := orgcontext.NewEngine(options...)
	if err != nil {
		fmt.Printf("Failed to initialize engine: %v\n", err)
		os.Exit(1)
	}
	return engine
}

func queryContext(settings *viper.Viper) context.Context {
	ctx := context.Background()
	if org := settings.GetString("org"); org != "" {
		ctx = multitenancy.WithOrgID(ctx, org)
	}
	return ctx
}

func ask(settings *viper.Viper, query string) {
	engine := newEngine(settings)
	ctx := queryContext(settings)

	result, err := engine.BuildContext(ctx, query)
	if err != nil {
		logger.Error(ctx, "Context assembly failed", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	printContext(settings, result)
}

func chat(settings *viper.Viper) {
	engine := newEngine(settings)
	ctx := queryContext(settings)
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("orgctx-cli v%s interactive mode. Type 'exit' to quit.\n", version)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		query := strings.TrimSpace(line)
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			return
		}

		result, err := engine.BuildContext(ctx, query)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		printContext(settings, result)
	}
}

func printContext(settings *viper.Viper, result *interfaces.Context) {
	if settings.GetString("output") == "json" {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Printf("Failed to encode context: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(encoded))
		return
	}

	fmt.Println(result.Summary)

	if len(result.People) > 0 {
		fmt.Println("\nPeople:")
		for _, p := range result.People {
			line := fmt.Sprintf("  - %s", p.Name)
			if p.Role != "" {
				line += fmt.Sprintf(", %s", p.Role)
			}
			if p.Department != "" {
				line += fmt.Sprintf(" (%s)", p.Department)
			}
			fmt.Println(line)
		}
	}

	if len(result.Relationships) > 0 {
		fmt.Println("\nReporting:")
		for _, rel := range result.Relationships {
			if rel.Manager != nil {
				fmt.Printf("  - %s reports to %s\n", rel.Person.Name, rel.Manager.Name)
			}
			for _, report := range rel.DirectReports {
				fmt.Printf("  - %s reports to %s\n", report.Name, rel.Person.Name)
			}
		}
	}

	if team := result.Compatibility.TeamCompatibility; team != nil {
		fmt.Printf("\nTeam compatibility: %d/100\n", team.Score)
		for _, s := range team.Strengths {
			fmt.Printf("  + %s\n", s)
		}
		for _, c := range team.Challenges {
			fmt.Printf("  - %s\n", c)
		}
	}

	if len(result.Documents) > 0 {
		fmt.Println("\nDocuments:")
		for _, doc := range result.Documents {
			fmt.Printf("  - %s\n", doc.Title)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  * %s\n", rec)
		}
	}
}

func printUsage() {
	fmt.Printf(`orgctx-cli v%s - organizational context assembly

Usage:
  orgctx-cli ask "<query>" [flags]   Assemble context for one query
  orgctx-cli chat [flags]            Interactive query loop
  orgctx-cli version                 Print the version
  orgctx-cli help                    Show this help

Flags:
  --directory <file>   Seed an in-memory directory from a YAML fixture
  --org <id>           Organization scope for multi-tenant backends
  --output <text|json> Output format (default text)
  --json               Shorthand for --output=json

Without --directory the store backend comes from the environment
(DIRECTORY_BACKEND=memory|postgres|supabase, see pkg/config). Settings may
also be placed in ./orgctx.yaml or ORGCONTEXT_CLI_* environment variables.

Examples:
  orgctx-cli ask "Tell me about Michael Chen" --directory team.yaml
  orgctx-cli ask "Who should be on a new AI team?" --json
`, version)
}
