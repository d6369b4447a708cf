package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/proidiot/gone/log"
	"github.com/spf13/cobra"

	"github.com/stuphlabs/splitwatch/stopwatch"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "splitwatch",
	Short: "splitwatch times child processes with a split-capable stopwatch",
}

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Runs a command and reports how long it took",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func init() {
	runCmd.Flags().BoolVarP(
		&quiet,
		"quiet",
		"q",
		false,
		"only print the final measurement",
	)
	rootCmd.AddCommand(runCmd)
}

func run(args []string) error {
	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stderr = os.Stderr

	out, err := child.StdoutPipe()
	if err != nil {
		return err
	}

	sw := stopwatch.StartNew()
	_ = log.Debug("starting child process")
	if err := child.Start(); err != nil {
		return err
	}

	if _, err := io.Copy(os.Stdout, out); err != nil {
		_ = log.Err(
			fmt.Sprintf(
				"unable to copy child output: %v",
				err,
			),
		)
	}

	// Split when the child closes its stdout, stop once it exits. The
	// two differ when the child lingers after its last write.
	outputClosed, _ := sw.Split()
	waitErr := child.Wait()
	total := sw.Stop()
	_ = log.Debug(fmt.Sprintf("child process ran for %v", total))

	label := color.New(color.FgGreen).SprintFunc()
	value := color.New(color.FgHiWhite).SprintFunc()

	if !quiet {
		fmt.Fprintf(
			os.Stderr,
			"%s %s\n",
			label("output closed after:"),
			value(fmt.Sprintf("%dms", outputClosed.Milliseconds())),
		)
	}
	fmt.Fprintf(
		os.Stderr,
		"%s %s\n",
		label("total:"),
		value(sw.String()),
	)

	return waitErr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
