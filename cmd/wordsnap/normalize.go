package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/internal/extraction"
	"github.com/heartmarshall/wordsnap-backend/internal/wordset"
)

type normalizeOutput struct {
	Words     []domain.WordEntry `json:"words"`
	Sets      []domain.WordSet   `json:"sets"`
	Dropped   int                `json:"dropped"`
	Malformed bool               `json:"malformed"`
}

func normalizeCmd() *cobra.Command {
	labeler := wordset.DefaultLabeler

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize a saved model reply and group it into sets",
		Long: "Reads a raw model reply from the file, or stdin when no file is given,\n" +
			"and prints the entries and sets the server would return for it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read reply: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), normalizeReply(string(raw), labeler))
		},
	}

	cmd.Flags().StringVar(&labeler.NumberFormat, "label-format", labeler.NumberFormat, "set name format, one %s for the number")
	cmd.Flags().StringVar(&labeler.MiscLabel, "misc-label", labeler.MiscLabel, "name of the set of untagged entries")
	return cmd
}

// normalizeReply never fails: a malformed reply is reported in the output
// with empty words, the same way the server degrades.
func normalizeReply(raw string, labeler wordset.Labeler) normalizeOutput {
	res, err := extraction.Parse(raw)
	return normalizeOutput{
		Words:     res.Entries,
		Sets:      labeler.Group(res.Entries),
		Dropped:   res.Dropped,
		Malformed: err != nil,
	}
}
