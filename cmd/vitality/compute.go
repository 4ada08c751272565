package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vitality/graphio"
	"github.com/katalvlaran/vitality/vitality"
)

func newComputeCmd(a *app) *cobra.Command {
	var (
		graphPath string
		vertex    string
		baseline  float64
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute closeness vitality for one vertex or all of them",
		Example: `  vitality compute --graph roads.yaml
  vitality compute --graph roads.toml --vertex hub --weight length
  vitality compute --graph net.hcl --weight edge --parallelism 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := graphio.DecodeFile(graphPath)
			if err != nil {
				return err
			}
			g, err := doc.Graph()
			if err != nil {
				return err
			}
			a.log.Info("graph loaded", "path", graphPath, "vertices", g.VertexCount(), "edges", g.EdgeCount())

			opts := []vitality.Option{
				vitality.WithContext(cmd.Context()),
				vitality.WithLogger(a.log),
				vitality.WithWeight(a.cfg.WeightFunc()),
				vitality.WithParallelism(a.cfg.Parallelism),
			}
			if cmd.Flags().Changed("wiener") {
				opts = append(opts, vitality.WithWienerIndex(baseline))
			}
			if cmd.Flags().Changed("vertex") {
				opts = append(opts, vitality.WithVertex(vertex))
			}

			res, err := vitality.ClosenessVitality(g, opts...)
			if err != nil {
				return err
			}
			if res.Single() {
				_, err = fmt.Fprintf(a.stdout, "%s\t%s\n", res.Vertex, formatValue(res.Value))
				return err
			}

			ids := make([]string, 0, len(res.Values))
			for id := range res.Values {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				if _, err := fmt.Fprintf(a.stdout, "%s\t%s\n", id, formatValue(res.Values[id])); err != nil {
					return err
				}
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&graphPath, "graph", "g", "", "graph document (.yaml, .yml, .json, .toml, .hcl)")
	f.StringVar(&vertex, "vertex", "", "only compute this vertex")
	f.String("weight", "", `edge cost: empty for unit weights, "edge" for stored weights, or an attribute name`)
	f.Int("parallelism", -1, "workers; negative counts back from the number of CPUs (-1 = all)")
	f.Float64Var(&baseline, "wiener", 0, "precomputed Wiener index of the whole graph")
	keyFlag(f, "weight", "weight")
	keyFlag(f, "parallelism", "parallelism")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
