// Package store persists solve results and attrition predictions, standing
// in for the original project's Supabase client (src/data/supabase_client.py).
// It keeps the same two record kinds — predictions and solves — behind a
// Store interface, backed by a real Postgres driver (pgx) rather than a
// fabricated Supabase SDK, since no such SDK appears anywhere in the
// retrieved example corpus.
package store
