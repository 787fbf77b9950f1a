package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a facts file template",
	Long: `Write a commented facts.toml template describing the fields smdoctor
expects. If [path] is omitted, the template is written to facts.toml in the
current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit writes a commented facts template to the target path (facts.toml in
// the working directory when no argument is given). It refuses to overwrite an
// existing file and creates missing parent directories.
func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target file
	target := "facts.toml"
	if len(args) == 1 && args[0] != "" && args[0] != "." {
		target = args[0]
		if st, err := os.Stat(target); err == nil && st.IsDir() {
			target = filepath.Join(target, "facts.toml")
		}
	}
	if !filepath.IsAbs(target) {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = filepath.Join(wd, target)
	}

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", target)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(target, []byte(factsTemplate()), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Wrote facts template to %s\n", rel)
	fmt.Fprintf(os.Stdout, "Fill it in and run: smdoctor explain %s\n", rel)
	return nil
}

// factsTemplate returns the commented starting point for a facts file.
// Required keys stay uncommented so a fresh template fails loudly instead of
// silently decoding to zero values.
func factsTemplate() string {
	return `# Facts about one minified stack frame, as smdoctor expects them.
# Remove the comments once filled in.

# SDK support for debug IDs: "full", "needs-upgrade" or "unofficial-sdk".
sdk_debug_id_support = "full"

# sdk_version = "7.60.0"

# Did the event carry any debug IDs at all?
event_has_debug_ids = false

# Debug ID attached to this frame, if any.
# stack_frame_debug_id = ""

# uploaded_some_artifact = false
# uploaded_some_artifact_with_debug_id = false
# uploaded_source_file_with_correct_debug_id = false
# uploaded_source_map_with_correct_debug_id = false

# Release pathway.
# release_name = "frontend@1.2.3"
# uploaded_some_artifact_to_release = false
# dist_name = ""
# stack_frame_path = "/static/js/app.min.js"
# matching_artifact_name = "~/static/js/app.min.js"
# release_source_map_reference = "app.min.js.map"

# Release artifact lookups: "found", "wrong-dist" or "unsuccessful".
source_file_release_name_fetching_result = "unsuccessful"
source_map_release_name_fetching_result = "unsuccessful"

# Scraping attempts: "found", "error" or "none".
# Omit a block entirely when scraping was not attempted.
# [source_file_scraping_status]
# status = "error"
# error = "HTTP 403 while fetching the source file"

# [source_map_scraping_status]
# status = "none"
`
}
