// Command kintree turns a pairwise kinase distance matrix (CSV) into a
// Newick tree with mean-distance branch lengths, plus an annotation side
// table when a metadata CSV is supplied.
//
// Usage:
//
//	kintree -i kinase_matrix.csv -o kinase.tree [-a annotations.csv] [-c ward]
//
// The two output files are written concurrently; any failure aborts the run
// with a non-zero exit and no attempt at partial output repair.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/kintree/kintree/annotate"
	"github.com/kintree/kintree/linkage"
	"github.com/kintree/kintree/newick"
	"github.com/kintree/kintree/tabio"
	"github.com/kintree/kintree/tree"
)

// annotationFileName is the side table written next to the tree output,
// matching the name downstream visualization tooling expects.
const annotationFileName = "kinase_annotations.csv"

func main() {
	var (
		matrixPath     = flag.String("i", "", "input distance matrix CSV (required)")
		treePath       = flag.String("o", "kinase.tree", "output Newick file")
		annotationPath = flag.String("a", "", "input annotation CSV (optional; enables the side table)")
		methodName     = flag.String("c", linkage.DefaultMethod.String(), "linkage criterion: ward|complete|weighted|average|centroid")
	)
	flag.Parse()

	if *matrixPath == "" {
		fmt.Fprintln(os.Stderr, "kintree: -i is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*matrixPath, *treePath, *annotationPath, *methodName); err != nil {
		fmt.Fprintln(os.Stderr, "kintree:", err)
		os.Exit(1)
	}
}

// run executes the whole pipeline: load → cluster → build → serialize,
// with the annotation mapping riding alongside.
func run(matrixPath, treePath, annotationPath, methodName string) error {
	method, err := linkage.ParseMethod(methodName)
	if err != nil {
		return err
	}

	in, err := os.Open(matrixPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dist, err := tabio.ReadMatrix(in)
	if err != nil {
		return fmt.Errorf("%s: %w", matrixPath, err)
	}

	history, err := linkage.Run(dist, method)
	if err != nil {
		return err
	}
	root, err := tree.Build(dist, history)
	if err != nil {
		return err
	}
	rendered, err := newick.Write(root)
	if err != nil {
		return err
	}

	// The Newick file and the annotation side table are independent
	// artifacts over the same label set; write them in parallel.
	var g errgroup.Group
	g.Go(func() error {
		return os.WriteFile(treePath, []byte(rendered+"\n"), 0o644)
	})
	if annotationPath != "" {
		g.Go(func() error {
			return writeSideTable(annotationPath, filepath.Join(filepath.Dir(treePath), annotationFileName), dist.Labels())
		})
	}
	return g.Wait()
}

// writeSideTable maps matrix labels onto the annotation source and writes
// the per-leaf side table.
func writeSideTable(annotationPath, outPath string, labels []string) error {
	in, err := os.Open(annotationPath)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := tabio.ReadAnnotations(in)
	if err != nil {
		return fmt.Errorf("%s: %w", annotationPath, err)
	}
	records, err := annotate.Map(labels, src)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := tabio.WriteAnnotations(out, records, src.ExtraColumns()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
