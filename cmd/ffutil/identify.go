package main

import (
	"fmt"

	farbfeld "github.com/mrjoshuak/go-farbfeld"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Print farbfeld stream info",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

var identifyDecode bool

func init() {
	identifyCmd.Flags().BoolVar(&identifyDecode, "decode", false,
		"fully decode the stream to verify the pixel records")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := openSource(path)
	if err != nil {
		return err
	}
	defer src.Close()

	if identifyDecode {
		img, err := farbfeld.Decode(src)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}
		fmt.Printf("File:       %s\n", path)
		fmt.Printf("Dimensions: %d x %d\n", img.Width(), img.Height())
		fmt.Printf("Pixels:     %d (verified)\n", img.NumPixels())
		return nil
	}

	h, err := farbfeld.DecodeHeader(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Dimensions: %d x %d\n", h.Width, h.Height)
	fmt.Printf("Data size:  %d bytes expected\n", 16+8*uint64(h.Width)*uint64(h.Height))
	return nil
}
