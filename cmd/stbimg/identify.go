package main

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/nullian/stb-go/stb"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image geometry and pixel checksum",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := stb.Probe(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	img, err := stb.LoadU8(path, 0)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Printf("Components: %d\n", info.Components)
	fmt.Printf("File size:  %d bytes (%.1f MB)\n", st.Size(), float64(st.Size())/(1024*1024))
	fmt.Printf("Pixels:     %d bytes, xxhash64 %016x\n", len(img.Buffer()), xxhash.Sum64(img.Buffer()))
	return nil
}
