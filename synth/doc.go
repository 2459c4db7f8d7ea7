// Package synth generates a synthetic employee-attrition table with the
// same column shape dataprep.LoadEmployeeRecords expects. It stands in for
// download_dataset.py's role of producing an input file, without the
// Kaggle-download mechanics, so the pipeline is runnable end to end without
// a network fetch.
package synth
