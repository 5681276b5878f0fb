// elspot-dump loads a day-ahead price document from a file or URL and prints
// the normalized prices for one region, optionally converted to other units.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/angas/elspot-go/elspot"
	"github.com/angas/elspot-go/feed"
)

func main() {
	file := flag.String("file", "", "path to a saved feed document")
	url := flag.String("url", "", "url to fetch the feed document from")
	region := flag.String("region", "", "region to print prices for (empty lists regions)")
	kwh := flag.Bool("kwh", false, "convert prices to kWh")
	fraction := flag.Bool("fraction", false, "convert prices to the currency sub-unit")
	flag.Parse()

	doc, err := load(*file, *url)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *region == "" {
		fmt.Printf("document for %s (%s), regions:\n", doc.Date().Format("2006-01-02"), doc.UnitString())
		for _, r := range doc.Regions() {
			fmt.Printf("  %s\n", r)
		}
		return
	}

	prices, err := doc.PricesForRegion(*region)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, p := range prices {
		if *fraction {
			if p, err = p.ToCurrencyFraction(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		if *kwh {
			if p, err = p.ToKWh(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		from, to, err := p.FromTo()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s - %s  %s\n", from.Format("15:04"), to.Format("15:04"), p.Label())
	}
}

func load(file, url string) (*elspot.Document, error) {
	switch {
	case file != "":
		return elspot.FromFile(file)
	case url != "":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return feed.FromURL(ctx, url)
	default:
		return nil, fmt.Errorf("either -file or -url is required")
	}
}
