package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read commands from stdin, one per line, until EOF",
	Long: `
repl drives the same list as the other subcommands interactively:
each line is "get <i>", "set <i> <v>", "insert <i> <v>", "remove <i>",
"commit", "stats", or "quit".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := bufio.NewScanner(os.Stdin)
		out := cmd.OutOrStdout()
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			switch fields[0] {
			case "quit", "exit":
				return nil
			default:
				if err := runReplLine(out, fields); err != nil {
					fmt.Fprintln(out, "error:", err)
				}
			}
		}
		return scanner.Err()
	},
}

func runReplLine(out interface{ Write([]byte) (int, error) }, fields []string) error {
	switch fields[0] {
	case "get":
		if len(fields) != 2 {
			return fmt.Errorf("usage: get <index>")
		}
		i, err := parseIndex(fields[1])
		if err != nil {
			return err
		}
		v, err := list.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
	case "set":
		if len(fields) != 3 {
			return fmt.Errorf("usage: set <index> <value>")
		}
		i, err := parseIndex(fields[1])
		if err != nil {
			return err
		}
		return list.Set(i, fields[2])
	case "insert":
		if len(fields) != 3 {
			return fmt.Errorf("usage: insert <index> <value>")
		}
		i, err := parseIndex(fields[1])
		if err != nil {
			return err
		}
		return list.Insert(i, fields[2])
	case "remove":
		if len(fields) != 2 {
			return fmt.Errorf("usage: remove <index>")
		}
		i, err := parseIndex(fields[1])
		if err != nil {
			return err
		}
		return list.Remove(i)
	case "commit":
		return list.Commit()
	case "stats":
		s := list.Stats()
		fmt.Fprintf(out, "length: %d committed: %d pending: %d height_bound: %d\n",
			list.Len(), s.CommittedLen, s.PendingNodes, s.HeightBound)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
