package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/named-data/ndnsim/topo"
	"github.com/spf13/cobra"
)

var (
	genOpts = topo.DefaultGenOptions()
	genOut  string
)

var CmdGen = &cobra.Command{
	Use:     "gen",
	Short:   "Generate a random topology",
	GroupID: "topo",
	Args:    cobra.NoArgs,
	RunE:    runGen,
}

var CmdValidate = &cobra.Command{
	Use:     "validate TOPOLOGY-FILE",
	Short:   "Check a topology for connectivity and routing problems",
	GroupID: "topo",
	Args:    cobra.ExactArgs(1),
	RunE:    runValidate,
}

func init() {
	flags := CmdGen.Flags()
	flags.IntVar(&genOpts.Relays, "relays", genOpts.Relays, "Number of relay vertices")
	flags.IntVar(&genOpts.Endpoints, "endpoints", genOpts.Endpoints, "Number of endpoint vertices")
	flags.IntVar(&genOpts.ExtraEdges, "extra-edges", genOpts.ExtraEdges, "Relay links beyond the spanning tree")
	flags.IntVar(&genOpts.PayloadLen, "payload-len", genOpts.PayloadLen, "Length of endpoint payloads")
	flags.StringVar(&genOpts.Prefix, "prefix", genOpts.Prefix, "First name component")
	flags.StringVar(&genOpts.Stream, "stream", genOpts.Stream, "Name of the random stream")
	flags.StringVarP(&genOut, "output", "o", "", "Output file (default stdout)")
}

func runGen(cmd *cobra.Command, _ []string) (err error) {
	t, err := topo.Generate(genOpts)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if genOut != "" {
		f, e := os.Create(genOut)
		if e != nil {
			return e
		}
		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = f
	}
	return topo.Write(w, t)
}

func runValidate(cmd *cobra.Command, args []string) error {
	t, err := topo.Load(args[0])
	if err != nil {
		return err
	}
	report, err := topo.Validate(t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "vertices=%d endpoints=%d edges=%d components=%d fingerprint=%016x\n",
		len(t.Vertices), len(t.Endpoints()), len(t.Edges), len(report.Components), t.Fingerprint())
	for _, r := range report.Routes {
		fmt.Fprintf(out, "%s -> %s: %s hops=%d shortest=%d\n", r.From, r.To, r.Status, r.Hops, r.Shortest)
	}
	for _, w := range report.Warnings() {
		fmt.Fprintln(out, "warning:", w)
	}
	return nil
}
