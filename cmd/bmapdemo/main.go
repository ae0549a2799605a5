// bmapdemo spawns a group of workers hammering one shared table with
// inserts, lookups and removes, optionally resizing afterward, and dumps
// the final buckets. It exercises only the public bmap API.
package main

import (
	"flag"
	"os"

	"github.com/oarkflow/log"
	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/bmap"
)

var fruits = []string{"pineapple", "mango", "apple", "orange", "banana", "kiwi"}

func main() {
	workers := flag.Int("workers", 4, "number of concurrent workers")
	rounds := flag.Int("rounds", 10, "insert/lookup/remove rounds per worker")
	capacity := flag.Int("capacity", 100, "initial slot count")
	grow := flag.Bool("grow", true, "double the slot count after the run")
	dump := flag.Bool("dump", false, "dump the final buckets to stdout")
	flag.Parse()

	logger := log.DefaultLogger

	table, err := bmap.New[int, string](*capacity, func(k int) uint64 {
		return uint64(k*k + 17)
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create table")
	}

	var g errgroup.Group
	for id := 0; id < *workers; id++ {
		g.Go(func() error {
			keys := []int{10 + id, 20 + id, 33 + id, 234 + id, 243 + id, 254 + id}
			for i := 0; i < *rounds; i++ {
				for j, n := range keys {
					table.Insert(n+i, fruits[j%len(fruits)])
				}

				if v, err := table.Lookup(keys[4] + i); err == nil {
					logger.Info().Int("worker", id).Str("value", v).Msg("lookup")
				} else {
					logger.Warn().Int("worker", id).Err(err).Msg("lookup")
				}

				for _, n := range []int{keys[1], keys[4]} {
					if err := table.Remove(n + i); err != nil {
						logger.Warn().Int("worker", id).Int("key", n+i).Err(err).Msg("remove")
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("workers")
	}

	if *grow {
		if err := table.Resize(2 * *capacity); err != nil {
			logger.Fatal().Err(err).Msg("resize")
		}
		logger.Info().Int("slots", table.Size()).Msg("resized")
	}

	logger.Info().
		Int("slots", table.Size()).
		Int("entries", table.Len()).
		Msg("final table")

	if *dump {
		if err := table.Dump(os.Stdout); err != nil {
			logger.Fatal().Err(err).Msg("dump")
		}
	}
}
