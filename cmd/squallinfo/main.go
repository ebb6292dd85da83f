// Package main provides a command-line smoke-test harness for squall: it
// decodes every message in a GRIB2 file and prints the message count; with
// -list it also prints one line per message, grid, and product. It is
// not part of the decoding core and must not grow decoding logic of its
// own.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mmp/squall"
)

var listFlag = flag.Bool("list", false, "list every message in the file")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <grib2-file>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "squallinfo:", err)
		os.Exit(1)
	}
}

func run(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := squall.NewDecoder(f)
	count := 0
	for {
		msg, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		count++
		if *listFlag {
			printMessage(count, msg)
		}
	}
	fmt.Printf("%s: %d message(s)\n", filename, count)
	return nil
}

func printMessage(n int, msg *squall.Message) {
	fmt.Printf("message %d: center=%d reference=%s\n", n,
		msg.Identification.OriginatingCenter, msg.Identification.ReferenceTime)
	for gi, g := range msg.Grids {
		fmt.Printf("  grid %d: template=%d products=%d\n", gi, g.GridTemplateNumber, len(g.Products))
		for pi, p := range g.Products {
			fmt.Printf("    product %d: template=%d data-rep=%d samples=%d\n",
				pi, p.ProductTemplateNumber, p.DataRepTemplateNumber, len(p.Samples))
		}
	}
}
