package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a default settings file",
	Long: `Write a build settings file in YAML format, prefilled with
default values. If FILE is not provided, 'vorolath.yml' is used.`,
	Run: runConfig,
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	path := "vorolath.yml"
	if len(args) >= 1 {
		path = args[0]
	}

	if ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path)); !ok {
		if err == nil {
			fmt.Println("aborted by user")
		} else {
			fmt.Println("aborted:", err)
		}
		return
	}

	if err := writeDefaultSettings(path); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	fmt.Printf("settings written to %s\n", path)
}

// confirmIfExists reports whether it is safe to proceed writing to
// path: true immediately if path does not exist yet, otherwise the
// result of asking the user for confirmation.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return true, nil
		}
		return false, statErr
	}
	return askForConfirmation(msg), nil
}

func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return false
		}
		switch input[0] {
		case 'Y', 'y':
			return true
		case 'N', 'n', '\n':
			return false
		}
	}
}
