package main

import (
	"fmt"
	"image/png"
	"path/filepath"
	"strings"

	farbfeld "github.com/mrjoshuak/go-farbfeld"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input.ff] [output]",
	Short: "Convert a farbfeld image to PNG, BMP or TIFF",
	Long: `Convert decodes a farbfeld stream and writes it in the raster format
named by the output extension (.png, .bmp, .tif/.tiff). Use "-" to read
the farbfeld stream from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	src, err := openSource(inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	img, err := farbfeld.Decode(src)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	log.Debugf("decoded %dx%d farbfeld image", img.Width(), img.Height())

	out, err := openOutput(outPath)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(outPath)); ext {
	case ".png":
		err = png.Encode(out, img)
	case ".bmp":
		err = bmp.Encode(out, img)
	case ".tif", ".tiff":
		err = tiff.Encode(out, img, nil)
	default:
		out.Close()
		return fmt.Errorf("unsupported output format %q (want .png, .bmp, .tif or .tiff)", ext)
	}
	if err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}

	return out.Close()
}
