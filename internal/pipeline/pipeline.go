package pipeline

import (
	"math"

	"github.com/pkg/errors"

	"github.com/nullian/stb-go/stb"
)

// DefaultQuality is the JPEG quality used when Options.Quality is zero.
const DefaultQuality = 90

// Options controls a decode → resize → encode run.
type Options struct {
	Components int        // output channel count, 0 keeps the source's
	Width      int        // target width, 0 derives it from Height or keeps the source's
	Height     int        // target height, 0 derives it from Width or keeps the source's
	Format     stb.Format // output format, empty picks it from the output extension
	Quality    int        // JPEG quality (1-100)
}

// Result holds the geometry on both ends of a pipeline run.
type Result struct {
	Src    stb.ImageInfo
	Dst    stb.ImageInfo
	Format stb.Format
}

// Run decodes input, optionally resizes it, and encodes it to output.
func Run(input, output string, opts Options) (*Result, error) {
	format := opts.Format
	if format == "" {
		f, ok := stb.FormatFromPath(output)
		if !ok {
			return nil, errors.Errorf("cannot infer output format from %q", output)
		}
		format = f
	}
	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}

	// 1. Decode
	img, err := stb.LoadU8(input, opts.Components)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	src := img.Info()

	// 2. Resize
	w, h := targetSize(src, opts.Width, opts.Height)
	if w != src.Width || h != src.Height {
		img, err = stb.ResizeU8(img, w, h)
		if err != nil {
			return nil, errors.Wrapf(err, "resize %s to %dx%d", src, w, h)
		}
	}

	// 3. Encode
	if err := stb.Write(output, img, format, quality); err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	return &Result{Src: src, Dst: img.Info(), Format: format}, nil
}

// targetSize fills in a zero dimension from the source aspect ratio.
func targetSize(src stb.ImageInfo, w, h int) (int, int) {
	switch {
	case w == 0 && h == 0:
		return src.Width, src.Height
	case w == 0:
		w = int(math.Round(float64(src.Width) * float64(h) / float64(src.Height)))
	case h == 0:
		h = int(math.Round(float64(src.Height) * float64(w) / float64(src.Width)))
	}
	return max(w, 1), max(h, 1)
}
