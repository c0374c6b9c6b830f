// Command okthread parses the saved HTML of an Okayplayer board thread page
// and prints its replies in a few useful shapes.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"okayplayer-parser/config"
	"okayplayer-parser/parser"
	"okayplayer-parser/pkg/thread"
)

var (
	configPath string
	verbose    bool

	showIndex int
	showText  bool
)

var rootCmd = &cobra.Command{
	Use:          "okthread",
	Short:        "Extract structured replies from a saved Okayplayer thread page",
	SilenceUsage: true,
}

var showCmd = &cobra.Command{
	Use:   "show <page.html>",
	Short: "Pretty-print one reply from the thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseFile(args[0])
		if err != nil {
			return err
		}
		if showIndex < 0 || showIndex >= len(t.Replies) {
			return fmt.Errorf("reply index %d out of range (thread has %d replies)", showIndex, len(t.Replies))
		}
		r := t.Replies[showIndex]
		cmd.Print(r.String())
		if showText {
			cmd.Printf("\n%s\n", r.PlainText())
		}
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump <page.html>",
	Short: "Dump the parsed thread as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseFile(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Errorf("encode thread: %w", err)
		}
		cmd.Println(string(out))
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree <page.html>",
	Short: "Print the reply tree implied by the parent references",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseFile(args[0])
		if err != nil {
			return err
		}
		thread.Walk(thread.BuildTree(t.Replies), func(n *thread.Node, depth int) {
			cmd.Printf("%s%s\n", strings.Repeat("  ", depth), replyLabel(n.Reply))
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	showCmd.Flags().IntVarP(&showIndex, "index", "n", 0, "reply index to show")
	showCmd.Flags().BoolVar(&showText, "text", false, "also print the message body as plain text")
	rootCmd.AddCommand(showCmd, dumpCmd, treeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseFile(path string) (*thread.Thread, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read thread page: %w", err)
	}

	return parser.New(cfg, logger).Parse(string(data))
}

func replyLabel(r *thread.Reply) string {
	title := "(untitled)"
	if r.MessageTitle != nil {
		title = *r.MessageTitle
	}
	author := "(unknown)"
	if r.AuthorName != nil {
		author = *r.AuthorName
	}
	num := "?"
	if r.MessageNum != nil {
		num = fmt.Sprint(*r.MessageNum)
	}
	return fmt.Sprintf("%s. %q by %s", num, title, author)
}
