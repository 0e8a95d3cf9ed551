package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zcurp/internal/cli"
	"github.com/zarlcorp/zcurp/internal/identity"
	"github.com/zarlcorp/zcurp/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zcurp"))

	ctx, cancel := zapp.SignalContext(context.Background())
	code := run(ctx)
	cancel()

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		code = 1
	}
	os.Exit(code)
}

func run(ctx context.Context) int {
	if len(os.Args) > 1 {
		return runCLI(os.Args[1], os.Args[2:])
	}

	if err := runTUI(ctx); err != nil {
		slog.Error("tui", "err", err)
		return 1
	}
	return 0
}

func runCLI(cmd string, args []string) int {
	var err error
	switch cmd {
	case "version":
		fmt.Printf("zcurp %s\n", version)
	case "encode":
		err = cli.CmdEncode(args, os.Stdout, os.Stderr)
	case "generate":
		err = cli.CmdGenerate(args, os.Stdout, os.Stderr)
	case "list":
		err = cli.CmdList(args, os.Stdout, os.Stderr)
	case "forget":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "usage: zcurp forget <id>")
			return 1
		}
		err = cli.CmdForget(args[0], os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "zcurp: unknown command %q\n", cmd)
		return 1
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "zcurp: %v\n", err)
		return 1
	}
	return 0
}

func runTUI(ctx context.Context) error {
	dataDir := cli.DataDir()
	gen := identity.New()
	firstRun := cli.IsFirstRun(dataDir)

	m := tui.New(version, dataDir, gen, firstRun)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
