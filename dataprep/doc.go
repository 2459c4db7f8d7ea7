// Package dataprep prepares the knapsack optimizer's inputs: it loads and
// cleans the raw employee-attrition table, runs a small exploratory analysis
// over it, and exposes the fixed retention-project portfolio (as
// knapsack.Item values) the optimizer actually solves against.
//
// The pipeline is deterministic end to end: cleaning always fills missing
// numeric cells with the column median and missing categorical cells with the
// column mode, and the retention portfolio is a fixed set of fifteen
// projects rather than anything derived at runtime from the loaded table.
// The EDA step is diagnostic only — it informs which columns a human analyst
// would target next, but nothing downstream in this repository consumes its
// output programmatically.
package dataprep
