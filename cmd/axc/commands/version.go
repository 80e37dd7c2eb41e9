package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/AXC/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show AXC version information",
	Long:  `Display version, build time, commit hash, and platform information.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				fmt.Printf("Error formatting version info: %v\n", err)
				return
			}
			fmt.Println(string(data))
		} else {
			fmt.Println(info.String())
			fmt.Printf("  Platform: %s\n", info.Platform)
			fmt.Printf("  Go version: %s\n", info.GoVersion)
		}
	},
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version information as JSON")
}
