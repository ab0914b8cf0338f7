package query

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/gamma-omg/rag-loader/docstore"
)

const (
	previewLen   = 500
	statsFileCap = 10
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	fileStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func RenderResults(w io.Writer, query string, results []docstore.SearchResult) {
	fmt.Fprintf(w, "\n%s\n", titleStyle.Render(fmt.Sprintf("Query: '%s'", query)))
	fmt.Fprintln(w, strings.Repeat("=", 80))

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	for i, r := range results {
		fmt.Fprintf(w, "\n%d. File: %s\n", i+1, fileStyle.Render(r.Metadata.FilePath))
		fmt.Fprintf(w, "   Chunk: %d/%d\n", r.Metadata.ChunkIndex+1, r.Metadata.TotalChunks)
		fmt.Fprintf(w, "   Distance: %.4f\n", r.Distance)
		fmt.Fprintln(w, "   Content:")
		fmt.Fprintf(w, "   %s\n", dimStyle.Render(strings.Repeat("-", 75)))
		fmt.Fprintf(w, "   %s\n", preview(r.Text))
	}
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLen {
		return text
	}

	return string([]rune(text)[:previewLen]) + "..."
}

func RenderStats(w io.Writer, s *Stats) {
	fmt.Fprintf(w, "\n%s\n", titleStyle.Render("Collection Statistics:"))
	fmt.Fprintf(w, "Collection: %s\n", s.Collection)
	fmt.Fprintf(w, "Total documents: %d\n", s.Total)
	if len(s.Files) == 0 {
		return
	}

	fmt.Fprintf(w, "Files indexed (sample of %d records): %d\n", s.Sampled, len(s.Files))
	for _, f := range s.Files[:min(statsFileCap, len(s.Files))] {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	if len(s.Files) > statsFileCap {
		fmt.Fprintf(w, "  ... and %d more\n", len(s.Files)-statsFileCap)
	}
}

func RenderHelp(w io.Writer) {
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  quit/exit - Exit the program")
	fmt.Fprintln(w, "  help - Show this help")
	fmt.Fprintln(w, "  stats - Show collection statistics")
	fmt.Fprintln(w, "  Any other text - Search the vector database")
}
