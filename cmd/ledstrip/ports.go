package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/ledstrip/conn"
)

func init() { rootCmd.AddCommand(portsCmd) }

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "list serial ports",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			ports, err := conn.SerialPorts()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Println("no serial ports found")
			}
			for _, port := range ports {
				fmt.Println(port)
			}
			return nil
		})
	},
}
