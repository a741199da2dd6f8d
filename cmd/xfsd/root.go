package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/chrootfs"
	"lesiw.io/xfs/memfs"
)

var log = logrus.WithField("pkg", "xfsd")

var rootCmd = &cobra.Command{
	Use:   "xfsd",
	Short: "Demonstrate xfs activation and backends",
}

func init() {
	rootCmd.PersistentFlags().String("backend", "memfs", "backend to use: memfs or chroot")
	rootCmd.PersistentFlags().Int("max-mib", -1, "memfs size cap in MiB, -1 for unlimited")
	rootCmd.PersistentFlags().String("root", "", "real directory to root the chroot backend at")

	viper.SetEnvPrefix("XFSD")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("max-mib", rootCmd.PersistentFlags().Lookup("max-mib"))
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))

	rootCmd.AddCommand(runCmd, inspectCmd)
}

// openBackend builds the backend named by the bound "backend" config key.
func openBackend() (xfs.FS, func() error, error) {
	switch viper.GetString("backend") {
	case "chroot":
		root := viper.GetString("root")
		if root == "" {
			return nil, nil, fmt.Errorf("xfsd: --root is required for the chroot backend")
		}
		fsys, err := chrootfs.Open(root)
		if err != nil {
			return nil, nil, err
		}
		return fsys, fsys.Close, nil
	default:
		maxMiB := viper.GetInt("max-mib")
		fsys := memfs.New(nil, memfs.WithMaxMiB(maxMiB))
		return fsys, func() error { return nil }, nil
	}
}
