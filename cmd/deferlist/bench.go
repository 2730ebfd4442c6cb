package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/deferlist/deferlist/deferred"
)

var benchOps int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time a batch of random inserts and removes against the list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bench := deferred.New[string]()
		rng := rand.New(rand.NewSource(1))
		start := time.Now()
		length := 0
		for i := 0; i < benchOps; i++ {
			if length == 0 || rng.Intn(3) != 0 {
				k := rng.Intn(length + 1)
				if err := bench.Insert(k, "x"); err != nil {
					return err
				}
				length++
			} else {
				k := rng.Intn(length)
				if err := bench.Remove(k); err != nil {
					return err
				}
				length--
			}
		}
		if err := bench.Commit(); err != nil {
			return err
		}
		elapsed := time.Since(start)
		fmt.Printf("%d ops in %s (%.0f ops/s), final length %d\n", benchOps, elapsed, float64(benchOps)/elapsed.Seconds(), bench.Len())
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchOps, "ops", "n", 10000, "number of random insert/remove operations to run")
}
