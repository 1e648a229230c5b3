// Copyright 2025 The declass Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jvmkit/declass/dump"
	"github.com/jvmkit/declass/internal/utils"
	"github.com/jvmkit/declass/log"
	"github.com/jvmkit/declass/mcp"
	"github.com/jvmkit/declass/parser"
	"github.com/jvmkit/declass/sample"
)

const Usage = `declass <Action> <Path> [Flags]
Action:
   dump         parse the class file and print a javap-like listing (to stdout by default)
   json         parse the class file and write its structure as JSON (to stdout by default)
   mcp          run as a MCP server for all class files (*.class) in the specific directory
   sample       run the bundled summation sample (the Go rendition of testdata/Sample.java)
   version      print the version of declass
`

func main() {
	flags := flag.NewFlagSet("declass", flag.ExitOnError)

	flagHelp := flags.Bool("h", false, "Show help message.")
	flagVerbose := flags.Bool("verbose", false, "Verbose mode.")
	flagTrace := flags.Bool("trace", false, "Trace every primitive read. Implies -verbose.")
	flagOutput := flags.String("o", "", "Output path.")

	var dopts dump.Options
	flags.BoolVar(&dopts.Pool, "pool", false, "print the constant pool in dump output")
	flags.BoolVar(&dopts.Code, "code", false, "print bytecode hex rows and line tables in dump output")

	flags.Usage = func() {
		fmt.Fprint(os.Stderr, Usage)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flags.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flags.Usage()
		os.Exit(1)
	}

	action := strings.ToLower(os.Args[1])

	switch action {
	case "version":
		fmt.Fprintf(os.Stdout, "%s\n", Version)

	case "dump":
		uri := parseArgsAndFlags(flags, flagHelp, flagVerbose, flagTrace)

		cf, err := parser.ParseFile(uri)
		if err != nil {
			log.Error("Failed to parse: %v\n", err)
			os.Exit(1)
		}

		var buf bytes.Buffer
		if err := dump.Dump(&buf, cf, dopts); err != nil {
			log.Error("Failed to dump: %v\n", err)
			os.Exit(1)
		}
		writeOutput(*flagOutput, buf.Bytes())

	case "json":
		uri := parseArgsAndFlags(flags, flagHelp, flagVerbose, flagTrace)

		cf, err := parser.ParseFile(uri)
		if err != nil {
			log.Error("Failed to parse: %v\n", err)
			os.Exit(1)
		}

		out, err := utils.MarshalJSONIndent(cf)
		if err != nil {
			log.Error("Failed to marshal class file: %v\n", err)
			os.Exit(1)
		}
		writeOutput(*flagOutput, []byte(out))

	case "mcp":
		uri := parseArgsAndFlags(flags, flagHelp, flagVerbose, flagTrace)

		svr, err := mcp.NewServer(mcp.ServerOptions{
			ServerName:    "declass",
			ServerVersion: Version,
			Verbose:       *flagVerbose,
			ClassToolsOptions: mcp.ClassToolsOptions{
				ClassDir: uri,
			},
		})
		if err != nil {
			log.Error("Failed to start MCP server: %v\n", err)
			os.Exit(1)
		}
		if err := svr.ServeStdio(); err != nil {
			log.Error("Failed to run MCP server: %v\n", err)
			os.Exit(1)
		}

	case "sample":
		count := 10
		if len(os.Args) > 2 {
			n, err := strconv.Atoi(os.Args[2])
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid count: %s\n", os.Args[2])
				os.Exit(1)
			}
			count = n
		}
		sample.New().Sum(os.Stdout, count)

	default:
		flags.Usage()
		os.Exit(1)
	}
}

func parseArgsAndFlags(flags *flag.FlagSet, flagHelp, flagVerbose, flagTrace *bool) (uri string) {
	if len(os.Args) < 3 {
		flags.Usage()
		os.Exit(1)
	}

	uri = os.Args[2]
	if len(os.Args) > 3 {
		flags.Parse(os.Args[3:])
	}

	if flagHelp != nil && *flagHelp {
		flags.Usage()
		os.Exit(0)
	}

	if flagTrace != nil && *flagTrace {
		log.SetLogLevel(log.TraceLevel)
	} else if flagVerbose != nil && *flagVerbose {
		log.SetLogLevel(log.DebugLevel)
	}

	return uri
}

func writeOutput(path string, data []byte) {
	if path != "" {
		if err := utils.MustWriteFile(path, data); err != nil {
			log.Error("Failed to write output: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Fprintf(os.Stdout, "%s\n", data)
}
