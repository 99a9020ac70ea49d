// Package importers provides the contact import pipeline.
//
// # Architecture
//
// The pipeline follows a simple flow:
//
//	Raw file → Parser → []Row → Transformer → []ContactRecord → Pipeline → ContactStore
//
// Parsers (ParseCSV, ParseXLSX) turn file content into ordered rows keyed
// by normalized column names. The transformer shapes each row into a
// ContactRecord, splitting comma-delimited tag and segment fields. The
// Pipeline then attempts one store create per record, in input order.
//
// # Error isolation
//
// Parse failures affect the whole file: the pipeline returns an error and
// nothing is persisted. Persistence failures are isolated per record: a
// failed create is logged and counted, and the batch continues. Callers
// receive only the aggregate Result{Success, Failed}, where
// Success+Failed equals the number of records attempted.
//
// # Batch semantics
//
// Records are persisted sequentially, one at a time. Each create is
// atomic at single-record granularity; the batch as a whole is
// non-transactional. If a caller aborts mid-batch, records already
// persisted remain persisted; the importer provides no rollback.
package importers
