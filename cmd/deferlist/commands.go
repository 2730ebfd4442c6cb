package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", arg, err)
	}
	return i, nil
}

var getCmd = &cobra.Command{
	Use:   "get <index>",
	Short: "Print the element currently visible at an index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		v, err := list.Get(i)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <index> <value>",
	Short: "Overwrite the element at an index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return list.Set(i, args[1])
	},
}

var insertCmd = &cobra.Command{
	Use:   "insert <index> <value>",
	Short: "Insert a value at an index, shifting the tail right",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return list.Insert(i, args[1])
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the element at an index, shifting the tail left",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return list.Remove(i)
	},
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Fold every pending edit into the backing array",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return list.Commit()
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the sequence's length and pending-tree size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := list.Stats()
		fmt.Printf("length: %d\n", list.Len())
		fmt.Printf("committed: %d\n", s.CommittedLen)
		fmt.Printf("pending nodes: %d\n", s.PendingNodes)
		fmt.Printf("height bound: %d\n", s.HeightBound)
		fmt.Printf("tree id: %s\n", s.TreeID)
		return nil
	},
}
