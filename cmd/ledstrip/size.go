package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/ledstrip/pixel"
)

func init() { rootCmd.AddCommand(sizeCmd) }

var sizeCmd = &cobra.Command{
	Use:   "size N...",
	Short: "print the RGB slots needed for N RGBW LEDs",
	Long: `Print the number of 3-byte RGB slots, and the buffer size in bytes, an RGB LED
driver must be configured with to drive N RGBW LEDs.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return printSizes(os.Stdout, args) })
	},
}

func printSizes(w io.Writer, args []string) error {
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return errors.WrapPrefix(err, "invalid LED count", 0)
		}
		slots, err := pixel.SlotCount(n)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		fmt.Fprintf(w, "%d LEDs: %d slots, %d bytes\n", n, slots, slots*3)
	}
	return nil
}
