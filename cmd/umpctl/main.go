package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/midy/internal/logging"
	"github.com/danmuck/midy/internal/protocol/vectors"
	"github.com/olekukonko/tablewriter"
)

type options struct {
	configPath  string
	kind        string
	vectorsPath string
	inputs      []string
}

func main() {
	opts := parseFlags()

	cfg := defaultToolConfig()
	if opts.configPath != "" {
		loaded, err := loadToolConfig(opts.configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = loaded
	}
	logging.ConfigureWith(cfg.Log)

	failed, err := run(os.Stdout, opts, cfg)
	if err != nil {
		fatalf("%v", err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to umpctl toml config")
	flag.StringVar(&opts.kind, "kind", string(vectors.KindPacket), "input kind: packet, negotiation or midi1")
	flag.StringVar(&opts.vectorsPath, "vectors", "", "yaml decode-vector file")
	flag.Parse()
	opts.inputs = flag.Args()
	return opts
}

// run decodes every input and renders a table. It returns the number of
// inputs whose outcome differs from what was expected.
func run(w io.Writer, opts options, cfg toolConfig) (int, error) {
	var inputs []vectors.Vector
	if opts.vectorsPath != "" {
		loaded, err := vectors.Load(opts.vectorsPath)
		if err != nil {
			return 0, err
		}
		inputs = append(inputs, loaded...)
	}
	if len(opts.inputs) > 0 {
		inputs = append(inputs, vectors.Vector{
			Name: "args",
			Kind: vectors.Kind(strings.TrimSpace(opts.kind)),
			Hex:  strings.Join(opts.inputs, " "),
		})
	}
	if len(inputs) == 0 {
		return 0, fmt.Errorf("no input: pass hex arguments or -vectors")
	}
	logging.Infof("umpctl inputs=%d", len(inputs))

	table := tablewriter.NewWriter(w)
	table.Header("#", "Kind", "Input", "Decoded", "Result")
	failed := 0
	index := 0
	for _, v := range inputs {
		rows, err := decodeInput(v.Kind, v.Hex, cfg.Policy)
		if err != nil {
			rows = []row{{Kind: v.Kind, Input: v.Hex, Err: err}}
		}
		var vectorErr error
		for _, r := range rows {
			if r.Err != nil && vectorErr == nil {
				vectorErr = r.Err
			}
			if err := table.Append(r.cells(index)); err != nil {
				return failed, err
			}
			index++
		}
		// expect_error applies to the vector, not to each packet in it.
		if (vectorErr != nil) != v.ExpectError {
			failed++
			logging.Warnf("umpctl vector=%q unexpected outcome: %v", v.Name, vectorErr)
		}
	}
	if err := table.Render(); err != nil {
		return failed, err
	}
	return failed, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "umpctl: "+format+"\n", args...)
	os.Exit(1)
}
