package main

import (
	"fmt"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"

	"github.com/simonhopkin/xcglogger/pkg/destination"
)

func newRotateCmd() *cobra.Command {
	var (
		file     string
		archive  string
		compress bool
	)

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate a log file",
		Long:  "Move a log file to an archive path and leave an empty file in its place. An existing archive is never overwritten.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" || archive == "" {
				return ewrap.New("both --file and --archive are required")
			}

			var final string

			dest, err := destination.NewFile(file, destination.FileOptions{
				Append:           true,
				CompressArchives: compress,
				RotationCallback: func(path string) { final = path },
			})
			if err != nil {
				return err
			}

			err = dest.Rotate(archive)

			closeErr := dest.Close()
			if err != nil {
				return err
			}

			if closeErr != nil {
				return closeErr
			}

			fmt.Fprintln(cmd.OutOrStdout(), final)

			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Active log file")
	cmd.Flags().StringVar(&archive, "archive", "", "Archive path; must not exist")
	cmd.Flags().BoolVar(&compress, "compress", false, "Gzip the archive")

	return cmd
}
