// Package attrition is a thin stand-in for the original project's supervised
// classifier (train_models.py / huggingface_integration.py). Training a real
// model is explicitly outside this repository's core — the Predictor
// interface and its one deterministic implementation exist only so the
// dashboard and REST surfaces have something real to call, not to reproduce
// a scikit-learn/XGBoost training pipeline.
package attrition
