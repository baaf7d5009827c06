package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	farbfeld "github.com/mrjoshuak/go-farbfeld"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	// Registered for image.Decode; convert.go uses them directly too.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [input] [output.ff]",
	Short: "Encode a PNG, JPEG, GIF, BMP or TIFF image as farbfeld",
	Long: `Encode reads any image format registered with the image package and
writes it as a farbfeld stream. Use "-" to write the stream to stdout.`,
	Args: cobra.ExactArgs(2),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	src, err := openSource(inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	m, format, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	log.Debugf("decoded %s input", format)

	out, err := openOutput(outPath)
	if err != nil {
		return err
	}

	if err := farbfeld.Encode(out, farbfeld.FromImage(m)); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}

	return out.Close()
}
