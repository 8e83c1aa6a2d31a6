package main

import (
	"github.com/Lambdaspire/action-substitute-secrets-in-file/internal/cmd/common"
	"github.com/Lambdaspire/action-substitute-secrets-in-file/internal/cmd/substitute"
	"github.com/spf13/cobra"
)

func main() {
	common.Run(newRootCmd())
}

func newRootCmd() *cobra.Command {
	rootCmd := substitute.NewSubstituteCmd()
	rootCmd.Use = "substitute-secrets"
	rootCmd.Version = common.Version

	common.SetupPersistentPreRun(rootCmd)
	common.AddCommonFlags(rootCmd)

	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	return rootCmd
}
