package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nullian/stb-go/internal/pipeline"
	"github.com/nullian/stb-go/stb"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an image to PNG, JPEG, BMP or TGA",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input image file")
	convertCmd.Flags().StringP("output", "o", "", "Output image file")
	convertCmd.Flags().String("format", "", "Output format (png, jpg, bmp, tga); defaults to the output extension")
	convertCmd.Flags().Int("quality", pipeline.DefaultQuality, "JPEG quality (1-100)")
	convertCmd.Flags().Int("channels", 0, "Output channels (0 keeps the source's, 1, 2, 3 or 4)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	formatStr, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")
	channels, _ := cmd.Flags().GetInt("channels")

	opts := pipeline.Options{
		Components: channels,
		Quality:    quality,
	}
	if formatStr != "" {
		f, ok := stb.ParseFormat(formatStr)
		if !ok {
			return fmt.Errorf("unknown format: %q", formatStr)
		}
		opts.Format = f
	}

	result, err := pipeline.Run(inputPath, outputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	fmt.Printf("Converted %s → %s (%s)\n", result.Src, result.Dst, result.Format)
	fmt.Printf("Input:  %s\n", inputPath)
	fmt.Printf("Output: %s\n", outputPath)
	return nil
}
