package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/mnp/heapq/heap"
	"github.com/mnp/heapq/log"
)

// defaultValues are inserted when no values are given on the command line.
var defaultValues = []string{"10", "20"}

// options are the flags accepted by the root command.
type options struct {
	capacity  int
	ascending bool
	drain     bool
	output    string
	verbose   bool
}

// result is what gets printed once the values have been inserted.
type result struct {
	Peek    int   `json:"peek"`
	Drained []int `json:"drained,omitempty"`
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "heapq [values...]",
		Short:         "Insert integers into a heap and print its head",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.LevelWarning
			if opts.verbose {
				level = log.LevelDebug
			}

			logger := log.NewWrappedLogger(log.NewWriterLogger(stderr), level)

			err := run(opts, args, stdout, logger)
			if err != nil {
				logger.Errorf("%v", err)
			}

			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVar(&opts.capacity, "capacity", capacityFromEnv(),
		fmt.Sprintf("initial capacity of the heap, defaults to $%s when set", capacityEnvVar))
	flags.BoolVar(&opts.ascending, "ascending", false, "put the smallest value at the head instead of the largest")
	flags.BoolVar(&opts.drain, "drain", false, "poll every value from the heap after peeking")
	flags.StringVarP(&opts.output, "output", "o", "text", "output format, one of 'text' or 'json'")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each step to stderr")

	return cmd
}

func run(opts options, args []string, stdout io.Writer, logger log.WrappedLogger) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("invalid output format '%s', expected 'text' or 'json'", opts.output)
	}

	if len(args) == 0 {
		args = defaultValues
	}

	values, err := parseValues(args)
	if err != nil {
		return err
	}

	cmp := heap.Reverse(heap.Ordered[int]())
	if opts.ascending {
		cmp = heap.Ordered[int]()
	}

	h, err := heap.NewHeapWithCapacityAndComparator(opts.capacity, cmp)
	if err != nil {
		return fmt.Errorf("could not create heap: %w", err)
	}

	if err := h.InsertAll(values...); err != nil {
		return fmt.Errorf("could not insert values: %w", err)
	}

	logger.Debugf("Inserted %d value(s), heap is %s with capacity %d", h.Len(), h, h.Cap())

	var res result

	res.Peek, _ = h.Peek()

	if opts.drain {
		res.Drained = make([]int, 0, h.Len())

		_ = h.Drain(func(v int) error {
			logger.Debugf("Polled %d, %d value(s) remaining", v, h.Len())
			res.Drained = append(res.Drained, v)

			return nil
		})
	}

	return render(stdout, opts.output, res)
}

// parseValues converts the command line arguments into integers.
func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s', expected an integer", arg)
		}

		values = append(values, v)
	}

	return values, nil
}

// render writes the result in the requested format.
func render(w io.Writer, output string, res result) error {
	if output == "json" {
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(res)
		if err != nil {
			return fmt.Errorf("could not marshal result: %w", err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	}

	if _, err := fmt.Fprintln(w, res.Peek); err != nil {
		return err
	}

	if res.Drained == nil {
		return nil
	}

	drained := make([]string, 0, len(res.Drained))
	for _, v := range res.Drained {
		drained = append(drained, strconv.Itoa(v))
	}

	_, err := fmt.Fprintln(w, strings.Join(drained, " "))

	return err
}
