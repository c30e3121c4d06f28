package benchmark_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-snapflag/snapflag"
)

// Benchmark the same l/p/d flag set across libraries.
// Every variant declares the flags and parses once per iteration.

var competitorArgs = []string{"-l", "-p", "1080", "-d", "/hola/mundo"}

func BenchmarkFlags_Snapflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		schema := snapflag.NewSchemaBuilder().Bool("l").Int32("p").String("d").MustBuild()
		values, err := snapflag.ParseArgs(schema, competitorArgs)
		if err != nil || !values.MustGetBool("l", false) {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlags_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		l := fs.BoolP("local", "l", false, "")
		fs.Int32P("port", "p", 0, "")
		fs.StringP("dir", "d", "", "")
		if err := fs.Parse(competitorArgs); err != nil || !*l {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlags_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use:  "bench",
			Run:  func(_ *cobra.Command, _ []string) {},
			Args: cobra.NoArgs,
		}
		cmd.Flags().BoolP("local", "l", false, "")
		cmd.Flags().Int32P("port", "p", 0, "")
		cmd.Flags().StringP("dir", "d", "", "")
		cmd.SetArgs(competitorArgs)
		if err := cmd.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlags_Urfave(b *testing.B) {
	args := append([]string{"bench"}, competitorArgs...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "l"},
				&cli.IntFlag{Name: "p"},
				&cli.StringFlag{Name: "d"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		if err := app.Run(args); err != nil {
			b.Fatal(err)
		}
	}
}
