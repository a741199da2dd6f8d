package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"lesiw.io/xfs/memfs"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump a memfs metadata snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys, closeFn, err := openBackend()
		if err != nil {
			return err
		}
		defer closeFn()

		mfs, ok := fsys.(*memfs.FS)
		if !ok {
			return fmt.Errorf("xfsd inspect: only the memfs backend supports snapshots")
		}

		snap, err := mfs.GetMetadataSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	},
}
