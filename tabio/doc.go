// Package tabio implements the tabular I/O collaborators around the core
// pipeline: reading a labeled distance matrix from CSV, reading an
// annotation table into an annotate.Source, and writing the per-leaf
// annotation side table back out.
//
// Matrix CSV layout (what the upstream comparison stage exports):
//
//	,EGFR,BRAF,AKT1
//	EGFR,0,0.3,0.7
//	BRAF,0.3,0,0.6
//	AKT1,0.7,0.6,0
//
// The corner cell is ignored; row labels must repeat the header labels in
// the same order. Numeric and structural validation is delegated to
// matrix.New, so a malformed matrix surfaces the same ErrInvalidInput
// family regardless of how it was loaded.
//
// Annotation CSV layout: a header of kinase,group,family plus any number of
// extra columns, one record per row.
package tabio
