package main

import (
	"fmt"
	"os"

	"github.com/qhalsey/BlitzBallz/internal/app"
	"github.com/qhalsey/BlitzBallz/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  blitzballz [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --data <dir>        Data directory for settings and high scores")
	fmt.Fprintln(os.Stderr, "  --seed <n>          RNG seed for reproducible runs (default: random)")
	fmt.Fprintln(os.Stderr, "  --columns <n>       Grid columns, 2-12 (default: 7)")
	fmt.Fprintln(os.Stderr, "  --bounces <n>       Aim preview bounce cap, 1-16 (default: 4)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  blitzballz")
	fmt.Fprintln(os.Stderr, "  blitzballz --seed 42 --mute")
	fmt.Fprintln(os.Stderr, "  blitzballz --columns 9 --data ~/.blitzballz")
}
