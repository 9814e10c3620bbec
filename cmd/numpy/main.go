// Package main provides the numpy CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/numpy/numpy"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)
	workers := flag.Int("workers", 0, "worker goroutines used by kernels (0 keeps the configured value)")
	values := flag.Bool("values", false, "inspect: print array values")
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()
	defer klog.Flush()

	if *workers > 0 {
		cfg := numpy.CurrentConfig()
		cfg.Workers = *workers
		if err := numpy.Configure(cfg); err != nil {
			klog.Exitf("invalid -workers: %v", err)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		usage(os.Stdout)
		return
	}

	switch args[0] {
	case "version":
		fmt.Printf("numpy for Go %s\n", version)
	case "demo":
		runDemo(os.Stdout)
	case "info":
		if len(args) != 2 {
			klog.Exitf("usage: numpy info '<json literal>'")
		}
		if err := runInfo(os.Stdout, args[1]); err != nil {
			klog.Exitf("info: %v", err)
		}
	case "save":
		if len(args) < 3 {
			klog.Exitf("usage: numpy save <file> name='<json literal>'...")
		}
		if err := runSave(os.Stdout, args[1], args[2:]); err != nil {
			klog.Exitf("save: %v", err)
		}
	case "inspect":
		if len(args) != 2 {
			klog.Exitf("usage: numpy [-values] inspect <file>")
		}
		if err := runInspect(os.Stdout, args[1], *values); err != nil {
			klog.Exitf("inspect: %v", err)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "numpy - NumPy-style n-dimensional arrays for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Usage: numpy [flags] <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version          Show version")
	fmt.Fprintln(w, "  demo             Run the example scenarios")
	fmt.Fprintln(w, "  info <literal>   Describe an array given as a JSON literal, e.g. '[[1,2],[3,4]]'")
	fmt.Fprintln(w, "  save <file> name=<literal>...")
	fmt.Fprintln(w, "                   Store arrays in a SafeTensors file")
	fmt.Fprintln(w, "  inspect <file>   List the arrays of a SafeTensors file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}
