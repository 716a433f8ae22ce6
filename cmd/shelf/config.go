package main

import (
	"fmt"
	"strings"

	"github.com/matsen/shelf/internal/config"
	"github.com/matsen/shelf/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values in the repository's config.json.

Usage:
  shelf config                              # Show all config
  shelf config library-path                 # Get specific value
  shelf config library-path ~/documents     # Set value
  shelf config pdf-reader zathura           # Set PDF reader

Keys:
  library-path  Directory holding the document files
  pdf-reader    PDF reader preference (system, skim, zathura, evince, okular)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for the config show command.
type ConfigResponse struct {
	LibraryPath string `json:"library_path,omitempty"`
	PDFReader   string `json:"pdf_reader,omitempty"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	store := openStore()
	configPath := store.ConfigPath()

	// No args: show all config
	if len(args) == 0 {
		libraryPath, _, err := storage.ReadField(configPath, config.KeyLibraryPath)
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		reader, _, err := storage.ReadField(configPath, config.KeyPDFReader)
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}

		if jsonOutput {
			outputJSON(ConfigResponse{LibraryPath: libraryPath, PDFReader: reader})
		} else {
			fmt.Printf("library-path: %s\n", libraryPath)
			fmt.Printf("pdf-reader:   %s\n", reader)
		}
		return nil
	}

	jsonKey, ok := configKey(args[0])
	if !ok {
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	// One arg: get specific value
	if len(args) == 1 {
		value, _, err := storage.ReadField(configPath, jsonKey)
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}

		if jsonOutput {
			outputJSON(map[string]string{jsonKey: value})
		} else {
			fmt.Println(value)
		}
		return nil
	}

	// Two args: set value
	value := args[1]

	switch jsonKey {
	case config.KeyLibraryPath:
		value = config.ExpandPath(value)
		if err := config.ValidateLibraryPath(value); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
	case config.KeyPDFReader:
		if err := config.ValidatePDFReader(value); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	if err := storage.WriteField(configPath, jsonKey, value); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		outputJSON(UpdateResponse{Status: "updated", Key: args[0], Value: value})
	} else {
		fmt.Printf("Updated %s to %s\n", args[0], value)
	}

	return nil
}

// configKey maps CLI key spellings to config.json keys.
func configKey(key string) (string, bool) {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")

	switch key {
	case "library-path", "librarypath":
		return config.KeyLibraryPath, true
	case "pdf-reader", "pdfreader":
		return config.KeyPDFReader, true
	default:
		return "", false
	}
}
