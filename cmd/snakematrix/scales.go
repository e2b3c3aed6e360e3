package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakematrix/internal/audio"
	"github.com/vovakirdan/snakematrix/internal/registry"
)

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List all available pitch scales",
	Long:  `Shows the pitch scales that can be assigned to the matrix rows.`,
	Run:   runScales,
}

func runScales(cmd *cobra.Command, args []string) {
	scales := registry.List()

	if len(scales) == 0 {
		fmt.Println("No scales available.")
		return
	}

	fmt.Println("Available scales:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scales {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range scales {
		marker := ""
		if s.ID == audio.DefaultScale {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, s.ID, s.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'snakematrix --scale <id>' to play with a scale.")
}
