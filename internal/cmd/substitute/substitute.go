package substitute

import (
	"github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/config"
	pkgsubstitute "github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/substitute"
	"github.com/spf13/cobra"
)

func NewSubstituteCmd() *cobra.Command {
	opts := config.DefaultSubstituteOptions()

	substituteCmd := &cobra.Command{
		Use:   "substitute",
		Short: "Replace token placeholders in a file with secret values",
		Long: `Find every occurrence of a token pattern such as ${TOKEN} in a file and replace the
placeholders that have an entry in the secrets mapping. Placeholders without a secret are
reported and left in place. The result is written to --output, or back to --file.`,
		Example: `substitute-secrets --file config.yml --token-pattern '${TOKEN}' --secrets-json '{"HOST":"example.com"}'
substitute-secrets -f app.env -o app.rendered.env -p '#{TOKEN}#' --secrets-file secrets.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := pkgsubstitute.Run(opts)
			return err
		},
	}

	flags := substituteCmd.Flags()
	flags.StringVarP(&opts.File, "file", "f", "", "File to scan for tokens (required)")
	flags.StringVarP(&opts.Output, "output", "o", "", "Where to write the result, defaults to --file")
	flags.StringVarP(&opts.TokenPattern, "token-pattern", "p", "", "Literal token pattern containing the TOKEN placeholder, e.g. '${TOKEN}' (required)")
	flags.StringVarP(&opts.SecretsJSON, "secrets-json", "s", "", "JSON object mapping token names to values")
	flags.StringVar(&opts.SecretsFile, "secrets-file", "", "JSON or YAML file mapping token names to values")
	flags.StringVar(&opts.MaxFileSize, "max-file-size", opts.MaxFileSize, "Refuse input files larger than this, e.g. 10MB (default unlimited)")
	flags.BoolVar(&opts.DryRun, "dry-run", opts.DryRun, "Report tokens without writing the output")

	return substituteCmd
}
