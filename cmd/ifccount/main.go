// Command ifccount prints the product entity counts of an IFC file. Useful
// for checking a model from the terminal without the dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"ifcdash/adapters/ifcstep"
	"ifcdash/domain/chart"
	"ifcdash/domain/model"
	"ifcdash/ports"
)

func main() {
	entityType := flag.String("type", "", "group entities of this type by name prefix instead of counting all products")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ifccount [-type IfcWall] <file.ifc>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	m, err := ifcstep.NewParser().Open(context.Background(), path)
	if err != nil {
		log.Fatalf("ifccount: %v", err)
	}
	defer m.Close()

	var table model.FrequencyTable
	if *entityType != "" {
		table = model.GroupByNamePrefix(m.EntitiesOf(*entityType))
	} else {
		var warnings []error
		table, warnings = model.CountByType(m.EntitiesOf(ports.KindProduct))
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %v\n", w)
		}
	}

	if len(table) == 0 {
		fmt.Println("no data")
		return
	}

	series := chart.BuildSeries(table, chart.KindBar)
	for i, label := range series.Labels {
		fmt.Printf("%-32s %d\n", label, series.Values[i])
	}
	fmt.Printf("%-32s %d\n", "total", table.Total())
}
