package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nullian/stb-go/internal/pipeline"
)

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Resample an image to new dimensions",
	RunE:  runResize,
}

func init() {
	resizeCmd.Flags().StringP("input", "i", "", "Input image file")
	resizeCmd.Flags().StringP("output", "o", "", "Output image file")
	resizeCmd.Flags().Int("width", 0, "Target width (0 keeps the aspect ratio)")
	resizeCmd.Flags().Int("height", 0, "Target height (0 keeps the aspect ratio)")
	resizeCmd.Flags().Int("quality", pipeline.DefaultQuality, "JPEG quality (1-100)")
	resizeCmd.Flags().Int("channels", 0, "Output channels (0 keeps the source's, 1, 2, 3 or 4)")
	resizeCmd.MarkFlagRequired("input")
	resizeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	quality, _ := cmd.Flags().GetInt("quality")
	channels, _ := cmd.Flags().GetInt("channels")

	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return fmt.Errorf("need a positive --width or --height")
	}

	result, err := pipeline.Run(inputPath, outputPath, pipeline.Options{
		Components: channels,
		Width:      width,
		Height:     height,
		Quality:    quality,
	})
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	fmt.Printf("Resized %s → %s\n", result.Src, result.Dst)
	fmt.Printf("Output: %s (%s)\n", outputPath, result.Format)
	return nil
}
