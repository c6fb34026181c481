package benchmark_test

import (
	"testing"

	"github.com/shayne/yargs"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-argv/argv"
)

// Each library parses the same vector into typed values. The argv parser
// is built once and reused; cobra and urfave keep per-run state in the
// command, so they are rebuilt every iteration.

// Simple: one number and one boolean option.

func BenchmarkSimple_Argv(b *testing.B) {
	p := argv.New("bench").
		NumberOption("port", "Server port").Short('p').Default(8080).Back().
		BoolOption("verbose", "Verbose output").Short('v').Back().
		MustBuild()

	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args)
	}
}

func BenchmarkSimple_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{Use: "bench", Run: func(_ *cobra.Command, _ []string) {}}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkSimple_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

type simpleFlags struct {
	Port    int  `flag:"port" short:"p"`
	Verbose bool `flag:"verbose" short:"v"`
}

func BenchmarkSimple_Yargs(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = yargs.ParseFlags[simpleFlags](args)
	}
}

// Positionals: a copy-like command with a variadic source list between two
// required positionals. Only argv assigns the slots; the others hand back
// the raw slice, which the benchmark splits by hand.

func BenchmarkPositionals_Argv(b *testing.B) {
	p := argv.New("cp").
		BoolOption("recursive", "").Short('r').Back().
		StringArg("first", "").Required().Back().
		StringArg("rest", "").Multiple().Back().
		StringArg("dst", "").Required().Back().
		MustBuild()

	args := []string{"-r", "a", "b", "c", "d", "out"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args)
	}
}

func BenchmarkPositionals_Cobra(b *testing.B) {
	args := []string{"-r", "a", "b", "c", "d", "out"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use:  "cp",
			Args: cobra.MinimumNArgs(2),
			Run: func(_ *cobra.Command, a []string) {
				_, _ = a[:len(a)-1], a[len(a)-1]
			},
		}
		cmd.Flags().BoolP("recursive", "r", false, "")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkPositionals_Urfave(b *testing.B) {
	args := []string{"cp", "-r", "a", "b", "c", "d", "out"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:  "cp",
			Flags: []cli.Flag{&cli.BoolFlag{Name: "recursive", Aliases: []string{"r"}}},
			Action: func(c *cli.Context) error {
				a := c.Args().Slice()
				_, _ = a[:len(a)-1], a[len(a)-1]
				return nil
			},
		}
		_ = app.Run(args)
	}
}

type copyFlags struct {
	Recursive bool `flag:"recursive" short:"r"`
}

func BenchmarkPositionals_Yargs(b *testing.B) {
	args := []string{"-r", "a", "b", "c", "d", "out"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res, err := yargs.ParseFlags[copyFlags](args)
		if err == nil && len(res.Args) > 1 {
			_, _ = res.Args[:len(res.Args)-1], res.Args[len(res.Args)-1]
		}
	}
}

// Many options: a realistic tool with ten options, six of them given.

var manyArgs = []string{
	"--flag1", "test1",
	"--flag2", "test2",
	"--flag3", "test3",
	"--port", "9000",
	"--verbose",
	"--debug",
}

func BenchmarkManyOptions_Argv(b *testing.B) {
	p := argv.New("bench").
		StringOption("flag1", "Flag 1").Default("value1").Back().
		StringOption("flag2", "Flag 2").Default("value2").Back().
		StringOption("flag3", "Flag 3").Default("value3").Back().
		StringOption("flag4", "Flag 4").Default("value4").Back().
		StringOption("flag5", "Flag 5").Default("value5").Back().
		NumberOption("port", "Port").Short('p').Default(8080).Back().
		BoolOption("verbose", "Verbose").Short('v').Back().
		BoolOption("debug", "Debug").Back().
		BoolOption("quiet", "Quiet").Back().
		BoolOption("force", "Force").Back().
		MustBuild()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(manyArgs)
	}
}

func BenchmarkManyOptions_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{Use: "bench", Run: func(_ *cobra.Command, _ []string) {}}
		cmd.Flags().String("flag1", "value1", "Flag 1")
		cmd.Flags().String("flag2", "value2", "Flag 2")
		cmd.Flags().String("flag3", "value3", "Flag 3")
		cmd.Flags().String("flag4", "value4", "Flag 4")
		cmd.Flags().String("flag5", "value5", "Flag 5")
		cmd.Flags().IntP("port", "p", 8080, "Port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose")
		cmd.Flags().Bool("debug", false, "Debug")
		cmd.Flags().Bool("quiet", false, "Quiet")
		cmd.Flags().Bool("force", false, "Force")
		cmd.SetArgs(manyArgs)
		_ = cmd.Execute()
	}
}

func BenchmarkManyOptions_Urfave(b *testing.B) {
	args := append([]string{"bench"}, manyArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "flag1", Value: "value1", Usage: "Flag 1"},
				&cli.StringFlag{Name: "flag2", Value: "value2", Usage: "Flag 2"},
				&cli.StringFlag{Name: "flag3", Value: "value3", Usage: "Flag 3"},
				&cli.StringFlag{Name: "flag4", Value: "value4", Usage: "Flag 4"},
				&cli.StringFlag{Name: "flag5", Value: "value5", Usage: "Flag 5"},
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Port"},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose"},
				&cli.BoolFlag{Name: "debug", Usage: "Debug"},
				&cli.BoolFlag{Name: "quiet", Usage: "Quiet"},
				&cli.BoolFlag{Name: "force", Usage: "Force"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

type manyFlags struct {
	Flag1   string `flag:"flag1"`
	Flag2   string `flag:"flag2"`
	Flag3   string `flag:"flag3"`
	Flag4   string `flag:"flag4"`
	Flag5   string `flag:"flag5"`
	Port    int    `flag:"port" short:"p"`
	Verbose bool   `flag:"verbose" short:"v"`
	Debug   bool   `flag:"debug"`
	Quiet   bool   `flag:"quiet"`
	Force   bool   `flag:"force"`
}

func BenchmarkManyOptions_Yargs(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = yargs.ParseFlags[manyFlags](manyArgs)
	}
}
