package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inboxiq/inboxiq/internal/config"
	"github.com/inboxiq/inboxiq/internal/mailbox"
)

// --- search ---

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the inbox and print matches",
	Long: `Search the inbox and print matches.

The query is matched case-insensitively against sender, subject,
preview and body.

Examples:
  inboxiq search budget
  inboxiq search "john doe"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		results := mailbox.Search(mailbox.Seed(), query)
		if len(results) == 0 {
			fmt.Println("No matching emails.")
			return nil
		}

		for _, r := range results {
			marker := " "
			if r.Starred {
				marker = colorize(colorYellow, "★")
			}
			subject := r.Subject
			if !r.Read {
				subject = colorize(colorBold, subject)
			}
			fmt.Printf("%s %s  %s  %s\n",
				marker,
				colorize(colorCyan, padRight(r.From, 18)),
				padRight(r.Date, 10),
				subject,
			)
			fmt.Printf("    %s\n", truncateLine(r.Preview, 72))
		}
		fmt.Printf("\n%d of %d emails match %q\n", len(results), len(mailbox.Seed()), query)
		return nil
	},
}

// --- ask ---

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask the assistant a one-off question",
	Long: `Ask the assistant a one-off question.

The reply is printed immediately, without the typing delay used by the
interactive chat.

Examples:
  inboxiq ask "Summarize my unread emails"
  inboxiq ask "Draft a reply to Sarah"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Println(cfg.Router().Classify(message))
		return nil
	},
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Printf("  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the effective assistant rule table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		for i, r := range cfg.Router().Rules() {
			fmt.Printf("%s  %s\n",
				colorize(colorBold, fmt.Sprintf("rule %d", i+1)),
				strings.Join(r.Terms, ", "),
			)
			fmt.Printf("    %s\n", truncateLine(strings.ReplaceAll(r.Response, "\n", " "), 72))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configRulesCmd)
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func truncateLine(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
