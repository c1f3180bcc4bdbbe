package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackflame7983/relpub/internal/checksum"
	"github.com/blackflame7983/relpub/internal/errors"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum [files...]",
	Short: "Print SHA-256 digests of the release artifacts",
	Long: `Checksum prints the SHA-256 digest of each given file. With no
arguments it hashes the two configured artifacts, matching what publish
would record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			paths = []string{cfg.SetupPath(), cfg.PortablePath()}
		}

		out := cmd.OutOrStdout()
		for _, path := range paths {
			digest, err := checksum.FileSHA256(path)
			if err != nil {
				return errors.WrapWithMessage(err, errors.Artifact, "hashing "+path)
			}
			fmt.Fprintf(out, "%s  %s\n", digest, filepath.Base(path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}
