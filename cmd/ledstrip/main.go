package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ledstrip"
	"github.com/BeatGlow/ledstrip/pixel"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "ledstrip drives addressable LED strips",
	Long:             "ledstrip drives SK6812 RGBW and WS281x LED strips over SPI, GPIO or a serial Adalight controller.",
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	busFlag        string
	spiBusFlag     string
	speedFlag      string
	pinFlag        string
	portFlag       string
	baudFlag       int
	lengthFlag     int
	widthFlag      int
	heightFlag     int
	serpentineFlag bool
	typeFlag       string
	orderFlag      string
	verboseFlag    bool
)

func init() {
	cobra.EnablePrefixMatching = true
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&busFlag, "bus", "spi", "strip connection: spi, gpio or serial")
	flags.StringVar(&spiBusFlag, "spi-bus", "", "SPI port name (default: use first available)")
	flags.StringVar(&speedFlag, "speed", ledstrip.DefaultSPIConfig.Speed.String(), "strip data rate")
	flags.StringVar(&pinFlag, "pin", ledstrip.DefaultGPIOConfig.Pin, "GPIO data pin")
	flags.StringVar(&portFlag, "port", ledstrip.DefaultSerialConfig.Port, "serial port of the Adalight controller")
	flags.IntVar(&baudFlag, "baud", ledstrip.DefaultSerialConfig.BaudRate, "serial baud rate")
	flags.IntVarP(&lengthFlag, "length", "n", 0, "number of LEDs (default: width x height)")
	flags.IntVar(&widthFlag, "width", 0, "matrix width in LEDs")
	flags.IntVar(&heightFlag, "height", 0, "matrix height in LEDs")
	flags.BoolVar(&serpentineFlag, "serpentine", false, "odd matrix rows run right to left")
	flags.StringVarP(&typeFlag, "type", "t", "sk6812rgbw", "LED type: sk6812rgbw or ws281x")
	flags.StringVar(&orderFlag, "order", pixel.OrderGRB.String(), "channel order of ws281x strips")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging and error stacks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); verboseFlag && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
		}
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}

func logger() *slog.Logger {
	if verboseFlag || os.Getenv("LEDSTRIP_DEBUG") != "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// withStrip opens the strip, calls fn and sends the result.
func withStrip(fn func(ledstrip.Strip) error) func() error {
	return func() error {
		log := logger()
		c, err := openConn(log)
		if err != nil {
			return err
		}

		s, err := openStrip(c, log)
		if err != nil {
			_ = c.Close()
			return err
		}
		log.Debug("using strip", "strip", s.String())
		return show(s, fn)
	}
}

// show calls fn, refreshes and closes s. Errors from Close are returned too.
func show(s ledstrip.Strip, fn func(ledstrip.Strip) error) (err error) {
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = stderrors.Join(err, errors.WrapPrefix(cerr, "close "+s.String(), 0))
		}
	}()

	if err = fn(s); err != nil {
		return err
	}
	return s.Refresh()
}

func openConn(log *slog.Logger) (ledstrip.Conn, error) {
	var speed physic.Frequency
	if err := speed.Set(speedFlag); err != nil {
		return nil, errors.WrapPrefix(err, "invalid speed", 0)
	}

	switch bus := strings.ToLower(busFlag); bus {
	case "spi":
		if _, err := host.Init(); err != nil {
			return nil, errors.Wrap(err, 0)
		}
		return ledstrip.OpenSPI(&ledstrip.SPIConfig{
			Name:   spiBusFlag,
			Speed:  speed,
			Logger: log,
		})
	case "gpio":
		if _, err := host.Init(); err != nil {
			return nil, errors.Wrap(err, 0)
		}
		return ledstrip.OpenGPIO(&ledstrip.GPIOConfig{
			Pin:    pinFlag,
			Speed:  speed,
			Logger: log,
		})
	case "serial":
		return ledstrip.OpenSerial(&ledstrip.SerialConfig{
			Port:     portFlag,
			BaudRate: baudFlag,
			Logger:   log,
		})
	default:
		return nil, errors.Errorf("unsupported bus type %q", bus)
	}
}

func openStrip(c ledstrip.Conn, log *slog.Logger) (ledstrip.Strip, error) {
	config, err := stripConfig(log)
	if err != nil {
		return nil, err
	}
	switch kind := strings.ToLower(typeFlag); kind {
	case "sk6812rgbw", "sk6812", "rgbw":
		return ledstrip.SK6812RGBW(c, config)
	case "ws281x", "ws2812", "ws2812b", "rgb":
		return ledstrip.WS281x(c, config)
	default:
		return nil, errors.Errorf("unsupported LED type %q", kind)
	}
}

func stripConfig(log *slog.Logger) (*ledstrip.Config, error) {
	order, err := pixel.ParseChannelOrder(orderFlag)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	config := &ledstrip.Config{
		Length: lengthFlag,
		Width:  widthFlag,
		Height: heightFlag,
		Order:  order,
		Logger: log,
	}
	if serpentineFlag {
		config.Layout = ledstrip.Serpentine
	}
	return config, nil
}
