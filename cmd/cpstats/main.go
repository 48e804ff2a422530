// Command cpstats is the CPStats fetch CLI.
//
// Usage:
//
//	cpstats fetch codeforces tourist
//	cpstats batch codeforces:tourist leetcode:neal_wu atcoder:tourist
//	cpstats platforms
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Muneer320/CPStats-API/internal/config"
	"github.com/Muneer320/CPStats-API/internal/fetcher"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "cpstats",
		Short: "Fetch competitive programming ratings",
	}

	root.AddCommand(fetchCmd())
	root.AddCommand(batchCmd())
	root.AddCommand(platformsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func fetchCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "fetch <platform> <username>",
		Short: "Fetch one rating and print it as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fetcher.New(timeout, 0, logger)
			rec := f.Rating(cmd.Context(), args[0], args[1])
			return printJSON(rec)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-request timeout")
	return cmd
}

func batchCmd() *cobra.Command {
	var timeout, delay time.Duration
	cmd := &cobra.Command{
		Use:   "batch <platform:username>...",
		Short: "Fetch multiple ratings sequentially and print the aggregate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := make([]fetcher.Request, len(args))
			for i, arg := range args {
				platform, username, ok := strings.Cut(arg, ":")
				if !ok {
					return fmt.Errorf("invalid item %q, expected platform:username", arg)
				}
				reqs[i] = fetcher.Request{Platform: platform, Username: username}
			}
			f := fetcher.New(timeout, delay, logger)
			return printJSON(f.RatingBatch(cmd.Context(), reqs))
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-request timeout")
	cmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "Pacing interval between requests")
	return cmd
}

func platformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(config.PlatformRegistry)
		},
	}
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
