package query

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gamma-omg/rag-loader/docstore"
)

// PrintQuery runs a single query and renders its results to w.
func (d *Driver) PrintQuery(ctx context.Context, w io.Writer, text string, k int) error {
	res, err := d.Query(ctx, text, k)
	if err != nil {
		return err
	}

	RenderResults(w, text, res)
	return nil
}

func (d *Driver) PrintStats(ctx context.Context, w io.Writer) error {
	s, err := d.Stats(ctx)
	if err != nil {
		return err
	}

	RenderStats(w, s)
	return nil
}

// Describe turns a query error into a message for the user.
func (d *Driver) Describe(err error) string {
	if errors.Is(err, docstore.ErrCollectionNotFound) {
		return fmt.Sprintf("Error: Could not find collection %q. Please run ingestion first to create embeddings.\nDetails: %s", d.collection, err)
	}

	return fmt.Sprintf("Error: %s", err)
}

// Interactive reads queries from in line by line until quit, exit or EOF.
func (d *Driver) Interactive(ctx context.Context, in io.Reader, out io.Writer, k int) error {
	fmt.Fprintln(out, "VectorDB Query Interface")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "Type 'quit' or 'exit' to stop")
	fmt.Fprintln(out, "Type 'help' for commands")

	rd := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "\nEnter query: ")
		raw, err := rd.ReadString('\n')
		if err != nil && (raw == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line := strings.TrimSpace(raw)
		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		case "help":
			RenderHelp(out)
		case "stats":
			if err := d.PrintStats(ctx, out); err != nil {
				fmt.Fprintf(out, "Error getting statistics: %s\n", err)
			}
		case "":
		default:
			if err := d.PrintQuery(ctx, out, line, k); err != nil {
				fmt.Fprintln(out, d.Describe(err))
			}
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
