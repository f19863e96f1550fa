// translit prints transliteration variants and query expansions without
// touching the database. Useful for checking why a search did or did not
// match.
package main

import (
	"os"

	"github.com/heartmarshall/goods-search/cmd/translit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
