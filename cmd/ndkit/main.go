// Package main provides the ndkit demonstration CLI.
//
// It tokenizes text with a tiktoken encoding, loads the token ids into an
// int64 array, and round-trips the token strings through a string tensor
// buffer.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	flag "github.com/spf13/pflag"

	"github.com/born-ml/ndkit/ndarray"
)

const version = "v0.1.0-dev"

func main() {
	encodingName := flag.StringP("encoding", "e", "cl100k_base", "tiktoken encoding name")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ndkit %s\n", version)
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: ndkit [-e encoding] text...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	text := strings.Join(flag.Args(), " ")

	enc, err := tiktoken.GetEncoding(*encodingName)
	if err != nil {
		log.Fatalf("Failed to load encoding %q: %v", *encodingName, err)
	}

	ids := enc.Encode(text, nil, nil)
	tokens := make([]int64, len(ids))
	for i, id := range ids {
		tokens[i] = int64(id)
	}

	shape, err := ndarray.MakeShape(int64(len(tokens)))
	if err != nil {
		log.Fatalf("Failed to build shape: %v", err)
	}
	arr, err := ndarray.FromSlice(tokens, shape)
	if err != nil {
		log.Fatalf("Failed to build token array: %v", err)
	}

	fmt.Printf("encoding: %s\n", *encodingName)
	fmt.Printf("tokens:   %s %v\n", arr.Shape(), tokens)

	for _, half := range []struct {
		name  string
		index ndarray.Index
	}{
		{"even", ndarray.Even()},
		{"odd", ndarray.Odd()},
	} {
		view, err := arr.Slice(half.index)
		if err != nil {
			log.Fatalf("Failed to slice token array: %v", err)
		}
		ids := make([]int64, view.Size())
		if err := view.Read(ids); err != nil {
			log.Fatalf("Failed to read %s tokens: %v", half.name, err)
		}
		fmt.Printf("%-5s     %s %v\n", half.name+":", view.Shape(), ids)
	}

	// Store each token's text in a string tensor buffer and read it back.
	sb, err := ndarray.EncodeStrings(arr, func(id int64) []byte {
		return []byte(enc.Decode([]int{int(id)}))
	})
	if err != nil {
		log.Fatalf("Failed to encode token strings: %v", err)
	}
	records, err := ndarray.Wrap[[]byte](sb, arr.Shape())
	if err != nil {
		log.Fatalf("Failed to wrap string buffer: %v", err)
	}

	fmt.Println("token strings:")
	seq, err := records.Scalars()
	if err != nil {
		log.Fatalf("Failed to iterate records: %v", err)
	}
	for coords, rec := range seq.Indexed() {
		v, err := rec.GetValue()
		if err != nil {
			log.Fatalf("Failed to read record: %v", err)
		}
		fmt.Printf("  %v %q\n", coords, string(v))
	}
}
